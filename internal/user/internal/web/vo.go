package web

type RegisterReq struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Nickname        string `json:"nickname"`
	Role            string `json:"role"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EditReq struct {
	Nickname  string   `json:"nickname"`
	Bio       string   `json:"bio"`
	Avatar    string   `json:"avatar"`
	Skills    []string `json:"skills"`
	Expertise []string `json:"expertise"`
}

type Profile struct {
	Id        int64    `json:"id"`
	SN        string   `json:"sn"`
	Email     string   `json:"email"`
	Nickname  string   `json:"nickname"`
	Role      string   `json:"role"`
	Bio       string   `json:"bio"`
	Avatar    string   `json:"avatar"`
	Skills    []string `json:"skills,omitempty"`
	Expertise []string `json:"expertise,omitempty"`
}
