package clients

const (
	USER_AGENT = "sentiresponder-client/1.0 (+https://github.com/spacesedan/sentiresponder)"

	// MAX_TRANSLATE_CHARS is the longest input the translators accept.
	MAX_TRANSLATE_CHARS = 5000
)
