package account

import "embed"

// Locales holds the module's translations, one YAML file per language under
// "locales/". Load them with i18n.LoadFS(account.Locales, "locales").
//
//go:embed locales/*.yaml
var Locales embed.FS
