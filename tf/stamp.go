package tf

import (
	"time"

	"github.com/heinemichael/geometry2/msg"
)

// Stamp returns value with its header set to the given frame and time. The
// input is taken by value and not modified:
//
//	p := tf.Stamp(msg.PointStamped{Point: msg.Point{X: 1}}, "laser", now)
func Stamp[T any, PT interface {
	*T
	msg.HeaderSetter
}](value T, frameID string, at time.Time) T {
	PT(&value).SetHeader(msg.Header{FrameID: frameID, Stamp: at})
	return value
}
