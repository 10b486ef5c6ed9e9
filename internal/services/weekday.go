package services

import "time"

// weekdayNamesPT holds the Portuguese weekday names indexed by time.Weekday
// (Sunday = 0). A fixed table instead of a locale database keeps the output
// stable across runtimes.
var weekdayNamesPT = [7]string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}

// weekdayNamePT returns the Portuguese name of t's weekday.
func weekdayNamePT(t time.Time) string {
	return weekdayNamesPT[t.Weekday()]
}
