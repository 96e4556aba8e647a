package proto

// State is the value of a single monochrome pixel.
type State uint8

const (
	Off State = 0
	On  State = 1
)

// Control is a remote monochrome display.
type Control interface {
	DrawPixel(x, y int, state State) error
	Clear() error
	Close() error
}

// Link carries encoded records to the display. Every Write is one record.
type Link interface {
	Write(p []byte) (n int, err error)
	Close() error
}
