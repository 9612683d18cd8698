package clock

import "time"

// Clock es la fuente de tiempo del countdown y del scheduler.
type Clock interface {
	Now() time.Time
}

// System usa el reloj del sistema.
type System struct{}

func (System) Now() time.Time { return time.Now() }
