package randx

import (
	"github.com/Kirov7/CheeseDB/data"
	"golang.org/x/exp/rand"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var cheeseTypes = []string{"Hard", "Semi-hard", "Soft", "Blue", "Fresh"}

func RandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// RandomRecord a record with a random brand and prices with at most two fractional digits
func RandomRecord() *data.Record {
	return data.NewRecord(
		RandomString(1+rand.Intn(6)),
		cheeseTypes[rand.Intn(len(cheeseTypes))],
		float64(rand.Intn(7000))/100,
		float64(rand.Intn(20000))/100,
	)
}

func RandomRecords(n int) []*data.Record {
	records := make([]*data.Record, n)
	for i := range records {
		records[i] = RandomRecord()
	}
	return records
}
