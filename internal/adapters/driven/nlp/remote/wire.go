package remote

import "encoding/json"

// envelope holds the fields every backend response shares.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

type loadTextRequest struct {
	Text string `json:"text"`
}

type entitiesRequest struct {
	Text        string `json:"text"`
	Method      string `json:"method"`
	Deduplicate bool   `json:"deduplicate"`
}

type entitiesResponse struct {
	envelope
	Entities  []wireEntity `json:"entities"`
	ModelUsed string       `json:"model_used"`
}

// wireEntity accepts both raw and deduplicated entity shapes.
type wireEntity struct {
	Text       string  `json:"text"`
	Label      string  `json:"label"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
	Positions  []int   `json:"positions"`
}

type textRequest struct {
	Text string `json:"text"`
}

type sentimentResponse struct {
	envelope
	Sentiment   string                     `json:"sentiment"`
	Scores      map[string]json.RawMessage `json:"scores"`
	MethodsUsed []string                   `json:"methods_used"`
	Confidence  float64                    `json:"confidence"`
}

type syntaxResponse struct {
	envelope
	Sentences []wireSentence `json:"sentences"`
	ModelUsed string         `json:"model_used"`
}

type wireSentence struct {
	Text  string     `json:"text"`
	Words []wireWord `json:"words"`
}

type wireWord struct {
	Text   string `json:"text"`
	Lemma  string `json:"lemma"`
	POS    string `json:"pos"`
	Head   int    `json:"head"`
	DepRel string `json:"deprel"`
}

type segmentRequest struct {
	Text    string `json:"text"`
	Method  string `json:"method"`
	Mode    string `json:"mode"`
	WithPOS bool   `json:"with_pos"`
}

type segmentResponse struct {
	envelope
	Segments []struct {
		Word string `json:"word"`
	} `json:"segments"`
}

type rewriteRequest struct {
	Style            string `json:"style"`
	Intensity        string `json:"intensity"`
	SegmentMode      bool   `json:"segment_mode"`
	MaxSegmentLength int    `json:"max_segment_length"`
}

type rewriteResponse struct {
	envelope
	RewrittenText string `json:"rewritten_text"`
}

type capabilitiesResponse struct {
	envelope
	Capabilities struct {
		EntityRecognition  wireFeature `json:"entity_recognition"`
		SentimentAnalysis  wireFeature `json:"sentiment_analysis"`
		SyntaxAnalysis     wireFeature `json:"syntax_analysis"`
		IntelligentRewrite bool        `json:"intelligent_rewrite"`
		Qwen3Rewrite       bool        `json:"qwen3_rewrite"`
	} `json:"capabilities"`
}

type wireFeature struct {
	Available bool     `json:"available"`
	Methods   []string `json:"methods"`
}
