package web

type TmpAuthCodeReq struct {
	// Key 想上传到的对象路径，例如 submissions/42/demo.mp4
	Key string `json:"key"`
	// Type 上传内容的 content-type
	Type string `json:"type"`
}

type TmpAuthCode struct {
	SecretId     string `json:"secretId"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	StartTime    int    `json:"startTime"`
	ExpiredTime  int    `json:"expiredTime"`
}
