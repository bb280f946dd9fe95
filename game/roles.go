package game

import "math/rand"

// catQuota is how many cats a match of n players opens with: one per two
// players, never more than MaxCats.
func catQuota(n int) int {
	k := n / 2
	if k > MaxCats {
		k = MaxCats
	}
	return k
}

// assignRoles turns every player back into a fresh mouse, then picks the
// opening cats by shuffling indices and taking the first k.
func assignRoles(players []*Player, rng *rand.Rand) []*Player {
	for _, p := range players {
		p.resetForMatch()
	}
	k := catQuota(len(players))
	cats := make([]*Player, 0, k)
	for _, i := range rng.Perm(len(players))[:k] {
		players[i].becomeCat()
		cats = append(cats, players[i])
	}
	return cats
}
