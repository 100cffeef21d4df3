package i18n

import "errors"

var (
	ErrInvalidLocale   = errors.New("i18n: invalid locale")
	ErrInvalidOption   = errors.New("i18n: invalid option")
	ErrMissingCurrency = errors.New("i18n: currency code is required with currency style")
	ErrInvalidTimeZone = errors.New("i18n: invalid time zone")
	ErrMessageSyntax   = errors.New("i18n: message syntax error")
	ErrMissingArgument = errors.New("i18n: missing message argument")
	ErrInvalidArgument = errors.New("i18n: invalid message argument")
	ErrInvalidFile     = errors.New("i18n: invalid catalog file")
)
