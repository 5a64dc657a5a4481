package legs

import "fmt"

// Conventional leg names, pre-registered in the Default registry.
//
// Tensor-network code on a square lattice conventionally names legs by their
// role: the physical index "Phy", the four sides "Left", "Right", "Up",
// "Down", and the four corners "LeftUp", "LeftDown", "RightUp", "RightDown".
// Each role also exists with a numeric suffix 1..9 (e.g. "Left2") for sites
// that carry several legs of the same role, available through Role. A pool
// of anonymous scratch legs "Leg00".."Leg99" is available through Numbered.
//
// All 190 names are registered at package init, suffix-major, so their ids
// are deterministic: Phy=0, Left=1, ..., RightDown=8, Phy1=9, and so on.
var (
	Phy       Leg
	Left      Leg
	Right     Leg
	Up        Leg
	Down      Leg
	LeftUp    Leg
	LeftDown  Leg
	RightUp   Leg
	RightDown Leg
)

// roleNames in registration order.
var roleNames = [...]string{
	"Phy", "Left", "Right", "Up", "Down",
	"LeftUp", "LeftDown", "RightUp", "RightDown",
}

func init() {
	for suffix := 0; suffix <= 9; suffix++ {
		for _, role := range roleNames {
			Default.Leg(roleName(role, suffix))
		}
	}
	for n := 0; n < 100; n++ {
		Default.Leg(fmt.Sprintf("Leg%02d", n))
	}
	Phy = Default.Leg("Phy")
	Left = Default.Leg("Left")
	Right = Default.Leg("Right")
	Up = Default.Leg("Up")
	Down = Default.Leg("Down")
	LeftUp = Default.Leg("LeftUp")
	LeftDown = Default.Leg("LeftDown")
	RightUp = Default.Leg("RightUp")
	RightDown = Default.Leg("RightDown")
}

// roleName returns the conventional name for a role with a numeric suffix:
// suffix 0 is spelled without the digit ("Left"), 1..9 append it ("Left1").
func roleName(role string, suffix int) string {
	if suffix == 0 {
		return role
	}
	return fmt.Sprintf("%s%d", role, suffix)
}

// Role returns the conventional leg for the given role name and numeric
// suffix in [0, 9]: Role("Left", 0) is legs.Left, Role("Left", 2) is the leg
// named "Left2".
//
// Any role string is accepted -- unknown roles or suffixes outside [0, 9]
// simply register a fresh name on first use.
func Role(role string, suffix int) Leg {
	return Default.Leg(roleName(role, suffix))
}

// Numbered returns the conventional scratch leg "Leg<nn>" for n in [0, 99].
// Values outside that range register a fresh name on first use.
func Numbered(n int) Leg {
	return Default.Leg(fmt.Sprintf("Leg%02d", n))
}
