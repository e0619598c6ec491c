package languages

// defaultCodes is the bundled selectable universe used when a field does not
// configure its own list. Codes are lower-case BCP 47 style tags.
var defaultCodes = []string{
	"af", "sq", "am", "ar", "an", "hy", "ast", "az", "eu", "be", "bn", "bs", "br", "bg", "ca", "ckb", "zh", "zh-hk",
	"zh-cn", "zh-tw", "co", "hr", "cs", "da", "nl", "en", "en-au", "en-ca", "en-in", "en-nz", "en-za", "en-gb",
	"en-us", "eo", "et", "fo", "fil", "fi", "fr", "fr-ca", "fr-fr", "fr-ch", "gl", "ka", "de", "de-at", "de-de",
	"de-li", "de-ch", "el", "gn", "gu", "ha", "haw", "he", "hi", "hu", "is", "id", "ia", "ga", "it", "it-it",
	"it-ch", "ja", "kn", "kk", "km", "ko", "ku", "ky", "lo", "la", "lv", "ln", "lt", "mk", "ms", "ml", "mt", "mr",
	"mn", "ne", "no", "nb", "nn", "oc", "or", "om", "ps", "fa", "pl", "pt", "pt-br", "pt-pt", "pa", "qu", "ro",
	"mo", "rm", "ru", "gd", "sr", "sh", "sn", "sd", "si", "sk", "sl", "so", "st", "es", "es-ar", "es-419", "es-mx",
	"es-es", "es-us", "su", "sw", "sv", "tg", "ta", "tt", "te", "th", "ti", "to", "tr", "tk", "tw", "uk", "ur",
	"ug", "uz", "vi", "wa", "cy", "fy", "xh", "yi", "yo", "zu",
}

// Default returns a copy of the bundled language codes in their declared order.
func Default() []string {
	out := make([]string, len(defaultCodes))
	copy(out, defaultCodes)
	return out
}

// IsDefault reports whether code is part of the bundled list.
func IsDefault(code string) bool {
	code = Normalize(code)
	for _, candidate := range defaultCodes {
		if candidate == code {
			return true
		}
	}
	return false
}
