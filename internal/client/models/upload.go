package models

// UploadAvatarResponse is returned after a successful avatar upload.
type UploadAvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
	Message   string `json:"message"`
}

// UploadHeaderBackgroundResponse is returned after a successful profile
// header image upload.
type UploadHeaderBackgroundResponse struct {
	HeaderBackgroundURL string `json:"header_background_url"`
	Message             string `json:"message"`
}
