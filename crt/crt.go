package crt

// Naive - Unsorted scan baseline with no collision resolution at all.
// It deliberately ignores its capacity and keeps accepting entries, which
// makes it the correctness and worst case reference for the other techniques.
const Naive int = 1

// SeparateChaining - Entries whose keys hash to the same bucket are kept in a
// per bucket list which is scanned linearly.
const SeparateChaining int = 2

// LinearProbing - Collisions probe forward through a single slot array with
// wraparound until an empty or matching slot is found.
const LinearProbing int = 3

// Cuckoo - Two tables with two independently seeded hash functions, a
// collision evicts the occupant which cascades into its alternate table.
const Cuckoo int = 4
