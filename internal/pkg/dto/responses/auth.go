package responses

type RegisterUser struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

type LoginUser struct {
	UserID  uint        `json:"userId"`
	Email   string      `json:"email"`
	Role    string      `json:"role"`
	Name    string      `json:"name"`
	Token   string      `json:"token"`
	Profile interface{} `json:"profile"`
}
