package service

import "time"

// Clock — источник текущего времени; в тестах подменяется.
type Clock func() time.Time

// stamp приводит время к UTC и точности timestamptz, чтобы все хранилища видели одно и то же значение.
func (c Clock) stamp() time.Time {
	if c == nil {
		return time.Now().UTC().Truncate(time.Microsecond)
	}
	return c().UTC().Truncate(time.Microsecond)
}
