/*
Package trie provides a generic prefix tree over sequences of ordered
elements, a bidirectional pre-order cursor, and a nearest-neighbour
classifier that votes over the best-matching stored sequences.
Every prefix of an inserted key addresses its own data value.
*/
package trie
