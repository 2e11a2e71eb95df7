package parcel

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	trackingPrefix       = "TRK"
	trackingSuffixLen    = 5
	trackingSuffixDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewTrackingID генерирует трек-номер вида TRK-<base36 millis>-<5 случайных
// символов>. Уникальность вероятностная, коллизия дополнительно ловится
// уникальным индексом в БД с одним повтором генерации.
func NewTrackingID(now time.Time) string {
	var sb strings.Builder
	sb.WriteString(trackingPrefix)
	sb.WriteByte('-')
	sb.WriteString(strconv.FormatInt(now.UnixMilli(), 36))
	sb.WriteByte('-')
	for i := 0; i < trackingSuffixLen; i++ {
		sb.WriteByte(trackingSuffixDigits[rand.IntN(len(trackingSuffixDigits))])
	}
	return sb.String()
}
