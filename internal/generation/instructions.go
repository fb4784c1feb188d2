package generation

import "github.com/phrazzld/courseforge-api/internal/domain"

// contentTypeInstructions holds the fixed instruction suffix appended to
// every prompt. Each suffix pins the exact plain-text output shape the
// content formatter's grammar expects, so parsing stays deterministic.
var contentTypeInstructions = map[domain.ContentType]string{
	domain.ContentTypeMCQ: "Format the output as a numbered list of multiple-choice questions. " +
		"For each question: write the question text after its number, then four options " +
		"on separate lines labelled A), B), C), and D), then a final line \"Answer: <letter>\". " +
		"Do not add any other text.",

	domain.ContentTypeCheatSheet: "Format the output as a cheat sheet in plain text. " +
		"Write each section heading on its own line ending with a colon, followed by its " +
		"key points as bullet lines starting with \"- \". Do not add any other text.",

	domain.ContentTypeDragDrop: "Format the output as a numbered list of drag-and-drop matching pairs. " +
		"Write each pair on one line as \"<number>. <item> -> <match>\". " +
		"Do not add any other text.",

	domain.ContentTypeTextualQA: "Format the output as question/answer pairs in plain text. " +
		"Write each question on a line starting with \"Q: \" and its sample answer on the " +
		"next line starting with \"A: \". Do not add any other text.",

	domain.ContentTypeListening: "Format the output as a listening exercise in plain text. " +
		"Write the audio script on a line starting with \"Script: \", then the comprehension " +
		"questions as a numbered list. Do not add any other text.",
}

// InstructionsFor returns the fixed output-shape instruction suffix for the
// given content type, or an empty string for unrecognized types.
func InstructionsFor(ct domain.ContentType) string {
	return contentTypeInstructions[ct]
}
