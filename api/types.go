package api

// BoardResponse describes the board. Rows hold one character per square,
// '.' for an empty one; Bonuses use the layout notation of the rule sets.
type BoardResponse struct {
	Dim       int      `json:"dim"`
	Rows      []string `json:"rows"`
	Bonuses   []string `json:"bonuses"`
	Rack      string   `json:"rack"`
	Empty     bool     `json:"empty"`
	TileCount int      `json:"tile_count"`
}

type RackRequest struct {
	Rack string `json:"rack"`
}

type RackResponse struct {
	Rack string `json:"rack"`
}

type LetterPlacement struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

type LettersRequest struct {
	Letters []LetterPlacement `json:"letters"`
}

type MoveRequest struct {
	Coords string `json:"coords"`
	Word   string `json:"word"`
}

type MoveResponse struct {
	Move  string `json:"move"`
	Score int    `json:"score"`
}

type Candidate struct {
	Move     string `json:"move"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Vertical bool   `json:"vertical"`
	Word     string `json:"word"`
	Score    int    `json:"score"`
}

type CandidatesResponse struct {
	Rack       string      `json:"rack"`
	Candidates []Candidate `json:"candidates"`
}

type AnagramsResponse struct {
	Letters string   `json:"letters"`
	Words   []string `json:"words"`
}
