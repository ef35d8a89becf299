package domain

// NotificationKind classifies a status message for styling.
type NotificationKind string

const (
	KindSuccess NotificationKind = "success"
	KindError   NotificationKind = "error"
	KindInfo    NotificationKind = "info"
)

// Notification is a transient status message shown to the user.
type Notification struct {
	Text string           `json:"text"`
	Kind NotificationKind `json:"kind"`
}

// User-facing messages. The form is Vietnamese-only.
const (
	MsgMissingRequired = "Vui lòng điền đầy đủ các trường bắt buộc: "
	MsgExportSucceeded = "Báo cáo đã được xuất thành công!"
	MsgExportFailed    = "Lỗi khi xuất báo cáo. Vui lòng thử lại."
	MsgFormCleared     = "Form đã được xóa"
	MsgDraftSaved      = "Dữ liệu đã được lưu tạm"
	MsgDraftRestored   = "Đã khôi phục dữ liệu lưu tạm"
	PromptClearForm    = "Bạn có chắc chắn muốn xóa toàn bộ dữ liệu form?"
	PromptRestoreDraft = "Có dữ liệu lưu tạm. Bạn có muốn khôi phục không?"
)
