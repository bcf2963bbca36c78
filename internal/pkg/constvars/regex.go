package constvars

const (
	RegexPhoneNumber = `^[0-9]{10}$`
)
