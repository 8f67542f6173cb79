package roster

// Record is one denormalized character entry in the output document.
//
// Rarity is a numeral stored as a string, or null when the avatar's quality
// tier has no mapping. Fields are declared in lexicographic key order so the
// serialized form matches the key-sorted maps around it.
type Record struct {
	Description string  `json:"description"`
	Element     string  `json:"element"`
	Name        string  `json:"name"`
	Rarity      *string `json:"rarity"`
	Weapon      string  `json:"weapon"`
}

// Accumulator maps character IDs (string form of the avatar table's integer
// Id) to their records. It is created empty, populated by the passes, and
// serialized once at the end of a run.
type Accumulator map[string]*Record
