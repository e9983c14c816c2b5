package fixture

import "github.com/riskibarqy/school-tournament/internal/domain/competition"

// byeSlot marks the synthetic entry that pads an odd team count.
const byeSlot = -1

// GenerateRoundRobin builds a single round-robin with the circle method.
//
// Position 0 stays fixed while the remaining positions rotate by one slot per
// round. Slot i pairs position i with position n-1-i; the home side flips on
// odd rounds so home games stay balanced. Pairings against the bye are
// skipped, so with an odd team count every round has one team resting.
func GenerateRoundRobin(teams []string, comp competition.Competition) []Round {
	if len(teams) < 2 {
		return []Round{}
	}

	slots := make([]int, 0, len(teams)+1)
	for i := range teams {
		slots = append(slots, i)
	}
	if len(slots)%2 != 0 {
		slots = append(slots, byeSlot)
	}

	size := len(slots)
	half := size / 2
	schedule := make([]Round, 0, size-1)

	for roundIdx := 0; roundIdx < size-1; roundIdx++ {
		number := roundIdx + 1
		matches := make([]Match, 0, half)

		for i := 0; i < half; i++ {
			first, second := slots[i], slots[size-1-i]
			if first == byeSlot || second == byeSlot {
				continue
			}

			home, away := teams[first], teams[second]
			if roundIdx%2 != 0 {
				home, away = away, home
			}

			matches = append(matches, Match{
				ID:    MatchID(comp, number, home, away),
				Round: number,
				Home:  home,
				Away:  away,
			})
		}

		schedule = append(schedule, Round{Number: number, Matches: matches})

		last := slots[size-1]
		copy(slots[2:], slots[1:size-1])
		slots[1] = last
	}

	return schedule
}
