package pp

// Emoji is the type of emoji strings.
type Emoji string

const (
	EmojiStar   Emoji = "🌟" // stars attached to the tool name
	EmojiBullet Emoji = "🔸" // generic bullet points

	EmojiConfig   Emoji = "🔧" // showing configuration
	EmojiRecord   Emoji = "📒" // listing registered records
	EmojiInternet Emoji = "🌐" // fetching domains
	EmojiDisabled Emoji = "🚫" // feature is disabled
	EmojiSorting  Emoji = "🔤" // checking the order of names
	EmojiCNAME    Emoji = "🔗" // checking CNAME targets

	EmojiBye Emoji = "👋" // bye!

	EmojiGood       Emoji = "😊" // good news
	EmojiUserError  Emoji = "😡" // mistakes in the registry
	EmojiError      Emoji = "😞" // errors that are not (directly) caused by registry mistakes
	EmojiImpossible Emoji = "🤯" // the impossible happened
	EmojiHint       Emoji = "💡" // hints
)

// indentPrefix should be wider than an emoji to achieve visually pleasing results.
const indentPrefix = "   "
