package interfaces

import "time"

// Clock supplies the current time for movement timestamps and session
// stamps. Injectable so tests can pin it.
type Clock interface {
	Now() time.Time
}
