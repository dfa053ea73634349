package relation

// Label is a relation classification. The coarse variant uses the subset
// {合, 冲, 同, 无}; the fine variant additionally uses 生, 泄, 克出, 受克,
// 刑, 害, 三合, 三会.
type Label string

const (
	LabelHe       Label = "合"
	LabelChong    Label = "冲"
	LabelTong     Label = "同"
	LabelNone     Label = "无"
	LabelXing     Label = "刑"
	LabelHai      Label = "害"
	LabelSheng    Label = "生"
	LabelXie      Label = "泄"
	LabelKeChu    Label = "克出"
	LabelShouKe   Label = "受克"
	LabelSanHe    Label = "三合"
	LabelSanHui   Label = "三会"
)

// Impact is the polarity a single relation contributes to an interaction.
type Impact string

const (
	Positive Impact = "positive"
	Neutral  Impact = "neutral"
	Negative Impact = "negative"
)

// Kind tells which half of the pillar (or which group table) produced a
// relation.
type Kind string

const (
	KindStem    Kind = "stem"
	KindBranch  Kind = "branch"
	KindSpecial Kind = "special"
)

// Relation is one classified relationship between a natal pillar and a
// moving pair, tagged with the symbols that produced it.
type Relation struct {
	Kind        Kind   `json:"kind"`
	Label       Label  `json:"label"`
	From        string `json:"from"`
	To          string `json:"to"`
	Impact      Impact `json:"impact"`
	Description string `json:"description"`
}
