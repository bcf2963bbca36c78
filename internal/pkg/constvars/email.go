package constvars

const (
	EmailBasicFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailHTMLFormat  = "To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n"
)
