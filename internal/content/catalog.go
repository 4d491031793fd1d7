// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"maps"

	"github.com/taibuivan/folio/internal/platform/locale"
)

// Catalog is the per-language table of modal labels and user-facing messages.
//
// It is part of the document, so an administrator who edits a message sees
// the new wording in every warning the server produces afterwards.
type Catalog map[string]string

// Message keys read by the server. The remaining catalog entries are labels
// for the front end only.
const (
	MsgLoginError                      = "loginError"
	MsgLocalStorageError               = "localStorageError"
	MsgUnsavedChangesWarning           = "unsavedChangesWarning"
	MsgDeleteProjectConfirmation       = "deleteProjectConfirmation"
	MsgDeleteExperienceConfirmation    = "deleteExperienceConfirmation"
	MsgDeleteSkillCategoryConfirmation = "deleteSkillCategoryConfirmation"
	MsgImageResolutionWarning          = "imageResolutionWarning"

	// Validation messages are not in the stored document; see validationMessages.
	MsgTitleRequired       = "titleRequired"
	MsgRoleRequired        = "roleRequired"
	MsgContactTypeInvalid  = "contactTypeInvalid"
	MsgContactMisaligned   = "contactMisaligned"
	MsgFontRequired        = "fontRequired"
	MsgFontSizeOutOfRange  = "fontSizeOutOfRange"
	MsgInvalidURL          = "invalidUrl"
	MsgIDMismatch          = "idMismatch"
	MsgNotImage            = "notImage"
	MsgValidationFailed    = "validationFailed"
	MsgNotEditing          = "notEditing"
	MsgAdminRequired       = "adminRequired"
	MsgFileTooLarge        = "fileTooLarge"
	MsgTooManyFiles        = "tooManyFiles"
	MsgInvalidPeriod       = "invalidPeriod"
)

var validationMessages = map[locale.Locale]Catalog{
	locale.English: {
		MsgTitleRequired:      "Title is required for both languages.",
		MsgRoleRequired:       "Role is required for both languages.",
		MsgContactTypeInvalid: "Contact type must be linkedin, email or phone.",
		MsgContactMisaligned:  "Both languages must list the same contact methods.",
		MsgFontRequired:       "Please choose a font.",
		MsgFontSizeOutOfRange: "Base font size must be between 14 and 20.",
		MsgInvalidURL:         "Please enter a valid link.",
		MsgIDMismatch:         "English and Vietnamese entries must share the same id.",
		MsgNotImage:           "Only image files can be uploaded.",
		MsgValidationFailed:   "Please correct the highlighted fields.",
		MsgNotEditing:         "Start editing before making changes.",
		MsgAdminRequired:      "Please log in as admin first.",
		MsgFileTooLarge:       "Each image must be smaller than the upload limit.",
		MsgTooManyFiles:       "Too many files in one upload.",
		MsgInvalidPeriod:      "Months must use the YYYY-MM format.",
	},
	locale.Vietnamese: {
		MsgTitleRequired:      "Tiêu đề là bắt buộc cho cả hai ngôn ngữ.",
		MsgRoleRequired:       "Vai trò là bắt buộc cho cả hai ngôn ngữ.",
		MsgContactTypeInvalid: "Loại liên hệ phải là linkedin, email hoặc phone.",
		MsgContactMisaligned:  "Hai ngôn ngữ phải có cùng danh sách liên hệ.",
		MsgFontRequired:       "Vui lòng chọn phông chữ.",
		MsgFontSizeOutOfRange: "Cỡ chữ cơ bản phải nằm trong khoảng 14 đến 20.",
		MsgInvalidURL:         "Vui lòng nhập liên kết hợp lệ.",
		MsgIDMismatch:         "Mục tiếng Anh và tiếng Việt phải có cùng id.",
		MsgNotImage:           "Chỉ có thể tải lên tệp hình ảnh.",
		MsgValidationFailed:   "Vui lòng sửa các trường được đánh dấu.",
		MsgNotEditing:         "Hãy bắt đầu chỉnh sửa trước khi thay đổi.",
		MsgAdminRequired:      "Vui lòng đăng nhập quản trị trước.",
		MsgFileTooLarge:       "Mỗi hình ảnh phải nhỏ hơn giới hạn tải lên.",
		MsgTooManyFiles:       "Quá nhiều tệp trong một lần tải lên.",
		MsgInvalidPeriod:      "Tháng phải theo định dạng YYYY-MM.",
	},
}

// Message looks key up in the document catalog for l, then in the built-in
// validation messages, then in English. The key itself is returned as a last resort.
func (c *AppContent) Message(l locale.Locale, key string) string {
	if c != nil {
		if msg := c.Language(l).Modals[key]; msg != "" {
			return msg
		}
	}
	if msg := validationMessages[l][key]; msg != "" {
		return msg
	}
	if c != nil {
		if msg := c.En.Modals[key]; msg != "" {
			return msg
		}
	}
	if msg := validationMessages[locale.English][key]; msg != "" {
		return msg
	}
	return key
}

// Clone returns an independent copy of the catalog.
func (c Catalog) Clone() Catalog {
	return maps.Clone(c)
}
