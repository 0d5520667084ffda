// Package rules holds the pure numeric rules of the game: class bonuses,
// vitals scaling, class determination, the experience curve, combat stat
// derivation, the level skill table and quest reward tables.
//
// Nothing in this package performs I/O. The only source of nondeterminism,
// the Adventurer skill pick, goes through an injected dice.Roller.
package rules
