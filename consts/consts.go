package consts

// Method keywords recognized in a route's method list.
const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

// Lowercase forms used when deriving handler names.
const (
	LowerGet    = "get"
	LowerPost   = "post"
	LowerPut    = "put"
	LowerDelete = "delete"
)

// PathSep separates segments of a handler path template.
const PathSep = "::"

const (
	RuneStar       = '*'
	RuneComma      = ','
	RuneQuote      = '"'
	RuneColon      = ':'
	RuneBraceOpen  = '{'
	RuneBraceClose = '}'
	RuneBackslash  = '\\'
	RuneSlash      = '/'
)
