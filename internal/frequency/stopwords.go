package frequency

// Built-in stopword list names accepted by BuiltinStopwords.
const (
	LangEnglish = "en"
	LangChinese = "zh"
	LangAll     = "all"
)

// BuiltinStopwords returns the built-in list for lang. An empty lang means
// English. The second result is false for an unknown lang.
func BuiltinStopwords(lang string) ([]string, bool) {
	switch lang {
	case "", LangEnglish:
		return DefaultEnglishStopwords(), true
	case LangChinese:
		return DefaultChineseStopwords(), true
	case LangAll:
		return DefaultStopwords(), true
	default:
		return nil, false
	}
}

// DefaultEnglishStopwords returns the built-in English stopword list.
func DefaultEnglishStopwords() []string {
	return []string{
		"a", "about", "above", "after", "again", "against", "all", "also", "am", "an",
		"and", "any", "are", "as", "at", "back", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "came", "can", "come", "could",
		"did", "do", "does", "doing", "don", "down", "during", "each", "even", "every",
		"few", "for", "from", "further", "get", "go", "going", "got", "had", "has",
		"have", "having", "he", "her", "here", "hers", "herself", "him", "himself", "his",
		"how", "however", "i", "if", "in", "into", "is", "it", "its", "itself",
		"just", "like", "made", "make", "many", "may", "me", "might", "more", "most",
		"much", "must", "my", "myself", "never", "new", "no", "nor", "not", "now",
		"of", "off", "on", "once", "only", "or", "other", "our", "ours", "ourselves",
		"out", "over", "own", "said", "same", "say", "she", "should", "since", "so",
		"some", "still", "such", "than", "that", "the", "their", "theirs", "them", "themselves",
		"then", "there", "these", "they", "this", "those", "through", "to", "too", "under",
		"until", "up", "upon", "us", "very", "was", "way", "we", "well", "were",
		"what", "when", "where", "which", "while", "who", "whom", "why", "will", "with",
		"without", "would", "you", "your", "yours", "yourself", "yourselves",
	}
}

// DefaultChineseStopwords returns the built-in Chinese stopword list.
func DefaultChineseStopwords() []string {
	return []string{
		"我", "你", "他", "她", "它", "我们", "你们", "他们", "她们", "它们",
		"这", "那", "这个", "那个", "这些", "那些", "这里", "那里", "自己", "什么",
		"怎么", "如何", "为什么", "的", "地", "得", "着", "了", "过", "在",
		"于", "从", "到", "向", "对", "对于", "关于", "根据", "通过", "因为",
		"为了", "如果", "虽然", "即使", "所以", "因此", "和", "与", "以及", "或者",
		"而且", "并且", "但是", "可是", "不过", "然而", "很", "非常", "更", "最",
		"太", "还", "也", "都", "又", "再", "就", "才", "是", "不是",
		"有", "没有", "会", "能", "可以", "要", "啊", "呀", "呢", "吧",
		"吗", "嘛", "等", "等等", "一个", "已经", "正在", "然后", "其中", "之",
	}
}

// DefaultStopwords returns the English and Chinese built-in lists combined.
func DefaultStopwords() []string {
	en := DefaultEnglishStopwords()
	zh := DefaultChineseStopwords()
	out := make([]string, 0, len(en)+len(zh))
	out = append(out, en...)
	return append(out, zh...)
}
