package response

import "errors"

// causeChain lists the messages of everything err wraps, outermost first,
// excluding err itself. Joined errors contribute each of their members.
func causeChain(err error) []string {
	var causes []string

	var walk func(error)
	walk = func(e error) {
		switch x := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range x.Unwrap() {
				causes = append(causes, inner.Error())
				walk(inner)
			}
		default:
			if inner := errors.Unwrap(e); inner != nil {
				causes = append(causes, inner.Error())
				walk(inner)
			}
		}
	}
	walk(err)

	return causes
}
