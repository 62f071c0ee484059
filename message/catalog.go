package message

// DefaultLocale is consulted for reason phrase lookup when a response
// has no explicit locale set.
const DefaultLocale = "en"

// ReasonCatalog maps a status code and locale to a reason phrase.
// Lookups are pure; an unknown code yields ok == false, never an error.
type ReasonCatalog interface {
	Reason(code int, locale string) (phrase string, ok bool)
}
