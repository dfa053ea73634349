package ganzhi

// produces encodes the five-element production (生) cycle.
// Wood feeds Fire, Fire makes Earth, Earth bears Metal, Metal carries Water,
// Water nourishes Wood.
var produces = map[Element]Element{
	Wood:  Fire,
	Fire:  Earth,
	Earth: Metal,
	Metal: Water,
	Water: Wood,
}

// controls encodes the five-element control (克) cycle.
var controls = map[Element]Element{
	Wood:  Earth,
	Earth: Water,
	Water: Fire,
	Fire:  Metal,
	Metal: Wood,
}

// Produces reports whether element a produces element b in the 生 cycle.
func Produces(a, b Element) bool { return produces[a] == b }

// Controls reports whether element a controls element b in the 克 cycle.
func Controls(a, b Element) bool { return controls[a] == b }
