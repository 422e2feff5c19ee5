package gateway

import "strings"

// preamble sets the tutor role and the answer register/language.
const preamble = "你是一位專業的香港DSE（中學文憑試）導師，專門幫助學生解答學術問題。請用繁體中文回答，並提供詳細、準確的解釋。"

// directives is the fixed list of answer-quality requirements.
const directives = "請確保你的回答：\n" +
	"1. 準確且符合DSE考試要求\n" +
	"2. 提供清晰的解釋和例子\n" +
	"3. 如果適用，提供學習建議\n" +
	"4. 使用適合中學生的語言水平\n" +
	"5. 如果學生提供了學習材料，請結合材料內容來回答問題"

// BuildPrompt concatenates the role preamble, the optional subject label,
// the optional context, the optional uploaded material, the fixed directives,
// and finally the literal question.
func BuildPrompt(in AskInput) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n\n")
	if in.SubjectLabel != "" {
		b.WriteString("科目：")
		b.WriteString(in.SubjectLabel)
	}
	b.WriteString("\n")
	if in.Context != "" {
		b.WriteString("相關背景：")
		b.WriteString(in.Context)
	}
	if in.UploadedContent != "" {
		b.WriteString("\n\n學生提供的學習材料內容：\n")
		b.WriteString(in.UploadedContent)
	}
	b.WriteString("\n\n")
	b.WriteString(directives)
	b.WriteString("\n\n學生問題：")
	b.WriteString(in.Question)
	return b.String()
}
