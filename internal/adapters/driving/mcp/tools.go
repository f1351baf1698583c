package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// LoadTextInput is the input schema for the load_text tool.
type LoadTextInput struct {
	Text   string `json:"text" jsonschema:"the text to load into the buffer"`
	Source string `json:"source,omitempty" jsonschema:"where the text came from (default mcp)"`
}

// LoadTextOutput is the output schema for the load_text tool.
type LoadTextOutput struct {
	ID         string `json:"id"`
	Characters int    `json:"characters"`
}

// FindInput is the input schema for the find tool.
type FindInput struct {
	Pattern       string `json:"pattern" jsonschema:"the text or regular expression to find"`
	UseRegex      bool   `json:"use_regex,omitempty" jsonschema:"treat pattern as a regular expression"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema:"match case exactly"`
}

// FindOutput is the output schema for the find tool.
type FindOutput struct {
	Matches []domain.Match `json:"matches"`
	Count   int            `json:"count"`
}

// ReplaceInput is the input schema for the replace tool.
type ReplaceInput struct {
	Pattern       string `json:"pattern" jsonschema:"the text or regular expression to replace"`
	Replacement   string `json:"replacement" jsonschema:"replacement text, inserted literally; $1 is not expanded in regex mode"`
	UseRegex      bool   `json:"use_regex,omitempty" jsonschema:"treat pattern as a regular expression"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema:"match case exactly"`
	Scope         string `json:"scope,omitempty" jsonschema:"all (default) or first"`
}

// SelectiveReplaceInput is the input schema for the selective_replace tool.
type SelectiveReplaceInput struct {
	Pattern       string `json:"pattern" jsonschema:"the text or regular expression to replace"`
	Replacement   string `json:"replacement" jsonschema:"replacement text"`
	Indices       []int  `json:"indices" jsonschema:"zero-based positions of the matches to replace, as returned by find"`
	UseRegex      bool   `json:"use_regex,omitempty" jsonschema:"treat pattern as a regular expression"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema:"match case exactly"`
}

// ReplaceOutput is the output schema for the replace tools.
type ReplaceOutput struct {
	NewText string `json:"new_text"`
	Count   int    `json:"count"`
}

// WordFrequencyInput is the input schema for the word_frequency tool.
// Unset toggles take the defaults used by the CLI.
type WordFrequencyInput struct {
	TopN               int    `json:"top_n,omitempty" jsonschema:"number of words to return (default 20)"`
	MinTokenLength     int    `json:"min_token_length,omitempty" jsonschema:"drop words shorter than this (default 1)"`
	IgnoreCase         *bool  `json:"ignore_case,omitempty" jsonschema:"fold case before counting (default true)"`
	ExcludePunctuation *bool  `json:"exclude_punctuation,omitempty" jsonschema:"strip punctuation (default true)"`
	ExcludeStopwords   *bool  `json:"exclude_stopwords,omitempty" jsonschema:"drop stopwords (default true)"`
	ExcludeNumbers     *bool  `json:"exclude_numbers,omitempty" jsonschema:"drop numbers (default true)"`
	ExcludeSingleChars *bool  `json:"exclude_single_chars,omitempty" jsonschema:"drop one-character words (default true)"`
	Segmentation       string `json:"segmentation,omitempty" jsonschema:"whitespace (default), unicode or backend"`
}

// WordFrequencyOutput is the output schema for the word_frequency tool.
type WordFrequencyOutput struct {
	Words []domain.WordCount `json:"words"`
}

// SummaryInput is the input schema for the generate_summary tool.
type SummaryInput struct {
	SentenceCount int    `json:"sentence_count,omitempty" jsonschema:"number of sentences (default 3)"`
	Method        string `json:"method,omitempty" jsonschema:"position, frequency or hybrid (default)"`
	Title         string `json:"title,omitempty" jsonschema:"optional title"`
}

// SummaryOutput is the output schema for the generate_summary tool.
type SummaryOutput struct {
	Summary string `json:"summary"`
}

// NormaliseInput is the input schema for the normalize_text tool.
type NormaliseInput struct {
	NormalizeNewlines  bool   `json:"normalize_newlines,omitempty" jsonschema:"convert CRLF and CR to LF"`
	TrimLines          bool   `json:"trim_lines,omitempty" jsonschema:"trim every line"`
	CollapseWhitespace bool   `json:"collapse_whitespace,omitempty" jsonschema:"collapse runs of whitespace within lines"`
	RemoveEmptyLines   bool   `json:"remove_empty_lines,omitempty" jsonschema:"drop blank lines"`
	MergeEmptyLines    bool   `json:"merge_empty_lines,omitempty" jsonschema:"collapse consecutive blank lines"`
	Case               string `json:"case,omitempty" jsonschema:"none, upper, lower, title or sentence"`
	Apply              bool   `json:"apply,omitempty" jsonschema:"store the result in the buffer"`
}

// NormaliseOutput is the output schema for the normalize_text tool.
type NormaliseOutput struct {
	Text    string `json:"text"`
	Applied bool   `json:"applied"`
}

// StopwordsInput is the input schema for the stopwords tool.
type StopwordsInput struct {
	Action string `json:"action" jsonschema:"add, remove, clear or list"`
	Words  string `json:"words,omitempty" jsonschema:"words separated by spaces, commas or semicolons"`
}

// StopwordsOutput is the output schema for the stopwords tool.
type StopwordsOutput struct {
	Stopwords []string `json:"stopwords"`
	Count     int      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "load_text",
		Description: "Load text into the buffer, replacing the previous text",
	}, s.handleLoadText)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find",
		Description: "Find every occurrence of a pattern in the buffer with surrounding context",
	}, s.handleFind)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "replace",
		Description: "Replace all matches, or the first match, of a pattern in the buffer",
	}, s.handleReplace)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "selective_replace",
		Description: "Replace only the matches at the given positions",
	}, s.handleSelectiveReplace)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "word_frequency",
		Description: "Rank the most frequent words in the buffer",
	}, s.handleWordFrequency)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_summary",
		Description: "Build an extractive summary of the buffer",
	}, s.handleSummary)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "text_stats",
		Description: "Character, line, sentence and word statistics for the buffer",
	}, s.handleTextStats)

	if s.ports.Normalise != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "normalize_text",
			Description: "Clean up newlines, whitespace, blank lines and case",
		}, s.handleNormalise)
	}
	if s.ports.Stopwords != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "stopwords",
			Description: "Add, remove, clear or list the stopwords used by word_frequency",
		}, s.handleStopwords)
	}
}

func (s *Server) handleLoadText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LoadTextInput,
) (*mcp.CallToolResult, LoadTextOutput, error) {
	source := input.Source
	if source == "" {
		source = "mcp"
	}
	buf, err := s.ports.Editor.Load(ctx, input.Text, source)
	if err != nil {
		return nil, LoadTextOutput{}, err
	}
	return nil, LoadTextOutput{ID: buf.ID, Characters: len([]rune(buf.Current))}, nil
}

func (s *Server) handleFind(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindInput,
) (*mcp.CallToolResult, FindOutput, error) {
	set, err := s.ports.Editor.Find(ctx, input.Pattern, input.UseRegex, input.CaseSensitive)
	if err != nil {
		return nil, FindOutput{}, err
	}
	matches := set.Matches
	if matches == nil {
		matches = []domain.Match{}
	}
	return nil, FindOutput{Matches: matches, Count: set.Count()}, nil
}

func (s *Server) handleReplace(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReplaceInput,
) (*mcp.CallToolResult, ReplaceOutput, error) {
	scope := domain.ReplaceScope(input.Scope)
	if scope == "" {
		scope = domain.ReplaceScopeAll
	}
	if !scope.IsValid() {
		return nil, ReplaceOutput{}, fmt.Errorf("%w: scope %q", domain.ErrInvalidInput, input.Scope)
	}

	res, err := s.ports.Editor.Replace(ctx, input.Pattern, input.Replacement, input.UseRegex, input.CaseSensitive, scope)
	if err != nil {
		return nil, ReplaceOutput{}, err
	}
	return nil, ReplaceOutput{NewText: res.Text, Count: res.Count}, nil
}

func (s *Server) handleSelectiveReplace(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SelectiveReplaceInput,
) (*mcp.CallToolResult, ReplaceOutput, error) {
	res, err := s.ports.Editor.SelectiveReplace(
		ctx, input.Pattern, input.Replacement, input.Indices, input.UseRegex, input.CaseSensitive,
	)
	if err != nil {
		return nil, ReplaceOutput{}, err
	}
	return nil, ReplaceOutput{NewText: res.Text, Count: res.Count}, nil
}

func (s *Server) handleWordFrequency(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input WordFrequencyInput,
) (*mcp.CallToolResult, WordFrequencyOutput, error) {
	defaults := domain.DefaultFrequencyOptions()
	opts := domain.FrequencyOptions{
		TopN:               input.TopN,
		MinTokenLength:     input.MinTokenLength,
		IgnoreCase:         boolOr(input.IgnoreCase, defaults.IgnoreCase),
		ExcludePunctuation: boolOr(input.ExcludePunctuation, defaults.ExcludePunctuation),
		ExcludeStopwords:   boolOr(input.ExcludeStopwords, defaults.ExcludeStopwords),
		ExcludeNumbers:     boolOr(input.ExcludeNumbers, defaults.ExcludeNumbers),
		ExcludeSingleChars: boolOr(input.ExcludeSingleChars, defaults.ExcludeSingleChars),
		Segmentation:       domain.SegmentationMethod(input.Segmentation),
	}

	counts, err := s.ports.Analysis.WordFrequency(ctx, opts)
	if err != nil {
		return nil, WordFrequencyOutput{}, err
	}
	if counts == nil {
		counts = []domain.WordCount{}
	}
	return nil, WordFrequencyOutput{Words: counts}, nil
}

func (s *Server) handleSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummaryInput,
) (*mcp.CallToolResult, SummaryOutput, error) {
	summary, err := s.ports.Analysis.Summarise(ctx, domain.SummaryRequest{
		SentenceCount: input.SentenceCount,
		Method:        domain.SummaryMethod(input.Method),
		Title:         input.Title,
	})
	if err != nil {
		return nil, SummaryOutput{}, err
	}
	return nil, SummaryOutput{Summary: summary}, nil
}

func (s *Server) handleTextStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, domain.TextStats, error) {
	stats, err := s.ports.Analysis.Stats(ctx)
	if err != nil {
		return nil, domain.TextStats{}, err
	}
	return nil, *stats, nil
}

func (s *Server) handleNormalise(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input NormaliseInput,
) (*mcp.CallToolResult, NormaliseOutput, error) {
	if s.ports.Normalise == nil {
		return nil, NormaliseOutput{}, ErrServiceUnavailable
	}

	opts := domain.NormaliseOptions{
		NormalizeNewlines:  input.NormalizeNewlines,
		TrimLines:          input.TrimLines,
		CollapseWhitespace: input.CollapseWhitespace,
		RemoveEmptyLines:   input.RemoveEmptyLines,
		MergeEmptyLines:    input.MergeEmptyLines,
		Case:               domain.CaseTransform(input.Case),
	}

	if input.Apply {
		buf, err := s.ports.Normalise.Apply(ctx, opts)
		if err != nil {
			return nil, NormaliseOutput{}, err
		}
		return nil, NormaliseOutput{Text: buf.Current, Applied: true}, nil
	}

	text, err := s.ports.Normalise.Preview(ctx, opts)
	if err != nil {
		return nil, NormaliseOutput{}, err
	}
	return nil, NormaliseOutput{Text: text}, nil
}

func (s *Server) handleStopwords(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StopwordsInput,
) (*mcp.CallToolResult, StopwordsOutput, error) {
	svc := s.ports.Stopwords
	if svc == nil {
		return nil, StopwordsOutput{}, ErrServiceUnavailable
	}

	var err error
	switch input.Action {
	case "add":
		_, err = svc.Add(ctx, input.Words)
	case "remove":
		_, err = svc.Remove(ctx, input.Words)
	case "clear":
		err = svc.Clear(ctx)
	case "list", "":
	default:
		return nil, StopwordsOutput{}, fmt.Errorf("%w: action %q", domain.ErrInvalidInput, input.Action)
	}
	if err != nil {
		return nil, StopwordsOutput{}, err
	}

	words, err := svc.List(ctx)
	if err != nil {
		return nil, StopwordsOutput{}, err
	}
	return nil, StopwordsOutput{Stopwords: words, Count: len(words)}, nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
