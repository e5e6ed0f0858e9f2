package engine

// Resolve decides a round from the player's point of view.
// Pairs the relation does not cover are draws.
func (r *Rules) Resolve(player, computer Hand) Outcome {
	if contains(r.beatenBy[computer], player) {
		return OutcomePlayer
	}
	if contains(r.beatenBy[player], computer) {
		return OutcomeComputer
	}
	return OutcomeDraw
}
