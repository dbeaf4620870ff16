package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "member" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "misplaced_annotation":
			return "アノテーションは型自体ではなくメンバーに付けてください"
		case "unsupported_shape":
			return "記述できない型です"
		case "malformed_value":
			return "アノテーション値が不正です"
		case "unsupported_form":
			return "アノテーションの形式がスキーマと一致しません"
		case "bad_definition":
			return "型定義を読み取れません"
		}
	default: // "en"
		switch code {
		case "misplaced_annotation":
			return "annotation must be attached to a member, not the type itself"
		case "unsupported_shape":
			return "type shape cannot be described"
		case "malformed_value":
			return "annotation value is malformed"
		case "unsupported_form":
			return "annotation form does not match the schema"
		case "bad_definition":
			return "type definition cannot be decoded"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
