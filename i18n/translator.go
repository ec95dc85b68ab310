package i18n

import "sync"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "empty":
			return "空の値は指定できません"
		case "invalid_shape":
			return "値の形式を解釈できません"
		case "unknown_element":
			return "未知の要素タイプです"
		case "asset_missing":
			return "アセットが見つかりません"
		case "duplicate_reference":
			return "参照IDが重複しています"
		case "unresolved_reference":
			return "参照先の要素が存在しません"
		case "invalid_transition":
			return "スライド遷移が必要です"
		case "duplicate_key":
			return "キーが重複しています"
		case "too_deep":
			return "ネストが深すぎます"
		case "parse_error":
			return "解析エラー"
		case "unsupported_version":
			return "サポートされていないフォーマットバージョンです"
		case "unknown_message":
			return "未知のメッセージタイプです"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "empty":
			return "value must not be empty"
		case "invalid_shape":
			return "unrecognized value shape"
		case "unknown_element":
			return "unknown element type"
		case "asset_missing":
			return "asset not found"
		case "duplicate_reference":
			return "duplicate element id"
		case "unresolved_reference":
			return "referenced element not found"
		case "invalid_transition":
			return "slide transition required"
		case "duplicate_key":
			return "duplicate key"
		case "too_deep":
			return "nesting too deep"
		case "parse_error":
			return "parse error"
		case "unsupported_version":
			return "unsupported format version"
		case "unknown_message":
			return "unknown message type"
		}
	}
	return code
}

var (
	translatorMu      sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	translatorMu.Lock()
	currentTranslator = tr
	translatorMu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	translatorMu.RLock()
	tr := currentTranslator
	translatorMu.RUnlock()
	return tr.Message(code, data)
}
