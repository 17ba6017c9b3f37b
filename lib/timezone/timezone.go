package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Australia/Sydney")
	if err != nil {
		panic(err)
	}
}

// election publish dates and scrape timestamps are all interpreted in AEST,
// regardless of where the server happens to run, otherwise date arithmetic
// based on <time.Time>.Year()/Month()/Day() drifts by a day near midnight
func Now() time.Time {
	return time.Now().In(Location)
}
