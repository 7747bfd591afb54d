package vrs

import "github.com/ga4gh/vrs-go/internal/vrserr"

// ResidueAlphabet names the alphabet a SequenceReference's residues
// are drawn from.
type ResidueAlphabet string

const (
	AlphabetDNA          ResidueAlphabet = "DNA"
	AlphabetRNA          ResidueAlphabet = "RNA"
	AlphabetAminoAcid    ResidueAlphabet = "AA"
	AlphabetUnspecified  ResidueAlphabet = ""
)

// dnaResidues and friends include the IUPAC ambiguity codes, since
// reference assemblies may contain them (e.g. masked repeat regions).
var dnaResidues = buildSet("ACGTNRYSWKMBDHV")
var rnaResidues = buildSet("ACGUNRYSWKMBDHV")
var aminoAcidResidues = buildSet("ACDEFGHIKLMNPQRSTVWYBZJXU*")

func buildSet(chars string) map[byte]struct{} {
	s := make(map[byte]struct{}, len(chars)*2)
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		s[c] = struct{}{}
		s[c+32] = struct{}{} // lowercase
	}
	return s
}

func setFor(alphabet ResidueAlphabet) map[byte]struct{} {
	switch alphabet {
	case AlphabetDNA:
		return dnaResidues
	case AlphabetRNA:
		return rnaResidues
	case AlphabetAminoAcid:
		return aminoAcidResidues
	default:
		return nil
	}
}

// ValidateSequence checks that every residue in seq belongs to
// alphabet. An AlphabetUnspecified reference imposes no constraint.
func ValidateSequence(alphabet ResidueAlphabet, seq string) error {
	set := setFor(alphabet)
	if set == nil {
		return nil
	}
	for i := 0; i < len(seq); i++ {
		if _, ok := set[seq[i]]; !ok {
			return &vrserr.InvalidAlphabetError{Alphabet: string(alphabet), Sequence: seq}
		}
	}
	return nil
}
