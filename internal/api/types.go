package api

// NonceResponse represents the GET v1/register response.
type NonceResponse struct {
	Nonce string `json:"nonce"`
}

// RegisterRequest represents the POST v1/register request. All six keys
// are required by the wire contract.
type RegisterRequest struct {
	Nonce       string `json:"nonce"`
	Username    string `json:"username"`
	DisplayName string `json:"displayname"`
	Password    string `json:"password"`
	Admin       bool   `json:"admin"`
	MAC         string `json:"mac"`
}

// ServerVersion represents the GET v1/server_version response.
type ServerVersion struct {
	ServerVersion string `json:"server_version"`
	PythonVersion string `json:"python_version,omitempty"`
}

type joinRoomRequest struct {
	UserID string `json:"user_id"`
}

type deactivateRequest struct {
	Erase bool `json:"erase"`
}

type resetPasswordRequest struct {
	NewPassword   string `json:"new_password"`
	LogoutDevices bool   `json:"logout_devices"`
}

type adminStatus struct {
	Admin bool `json:"admin"`
}
