package entities

// OptionLabels lists the four answer labels in presentation order.
var OptionLabels = []string{"A", "B", "C", "D"}

// Question is a single multiple-choice question with four options
// labeled A-D and exactly one correct label. Questions are immutable
// once stored; the ingestion parser is the only producer.
type Question struct {
	Text    string `json:"question"`
	OptionA string `json:"a"`
	OptionB string `json:"b"`
	OptionC string `json:"c"`
	OptionD string `json:"d"`
	Answer  string `json:"answer"` // one of "A".."D"
}

// Option returns the option text for a label, or "" for an unknown label.
func (q Question) Option(label string) string {
	switch label {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}
