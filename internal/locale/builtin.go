package locale

// Default returns the fallback bundle (en_US). The returned value is shared;
// callers must not modify it.
func Default() *Bundle {
	return defaultBundle
}

var defaultBundle = &Bundle{
	Locale: DefaultLocale,
	Components: map[string]map[string]string{
		ComponentPopconfirm: {KeyOKText: "OK", KeyCancelText: "Cancel"},
	},
}

func builtin() []*Bundle {
	bundles := []*Bundle{cloneBundle(defaultBundle)}
	for name, strs := range map[string][2]string{
		"zh_CN": {"确定", "取消"},
		"de_DE": {"OK", "Abbrechen"},
		"fr_FR": {"OK", "Annuler"},
		"es_ES": {"Aceptar", "Cancelar"},
		"ja_JP": {"OK", "キャンセル"},
		"pt_BR": {"OK", "Cancelar"},
		"ru_RU": {"OK", "Отмена"},
	} {
		bundles = append(bundles, &Bundle{
			Locale: name,
			Components: map[string]map[string]string{
				ComponentPopconfirm: {KeyOKText: strs[0], KeyCancelText: strs[1]},
			},
		})
	}
	return bundles
}

func cloneBundle(b *Bundle) *Bundle {
	return &Bundle{Locale: b.Locale, Components: cloneComponents(b.Components)}
}
