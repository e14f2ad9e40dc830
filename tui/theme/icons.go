package theme

import (
	"os"
	"sync"
)

// Nerd Font Icons (Private Constants)
const (
	nerdIconLogo      = "\U000F04DC" // md-store (U+F04DC)
	nerdIconHome      = "\uf015"     // fa-home (U+F015)
	nerdIconCart      = "\uf07a"     // fa-shopping_cart (U+F07A)
	nerdIconOrders    = "\uf022"     // fa-list_alt (U+F022)
	nerdIconCustomers = "\uf0c0"     // fa-users (U+F0C0)
	nerdIconProducts  = "\uf1b2"     // fa-cube (U+F1B2)
	nerdIconInventory = "\uf1b3"     // fa-cubes (U+F1B3)
	nerdIconReports   = "\uf080"     // fa-bar_chart (U+F080)
	nerdIconPayments  = "\uf09d"     // fa-credit_card (U+F09D)
	nerdIconShift     = "\uf017"     // fa-clock_o (U+F017)
	nerdIconSettings  = "\uf013"     // fa-cog (U+F013)
	nerdIconDashboard = "\uf0e4"     // fa-tachometer (U+F0E4)
	nerdIconLogout    = "\uf08b"     // fa-sign_out (U+F08B)
	nerdIconBullet    = "\uf444"     // oct-dot_fill (U+F444)
	nerdIconFocus     = "\U000F0054" // md-arrow_right (U+F0054)
)

// ASCII Fallback Icons (Private Constants)
const (
	asciiIconLogo      = "[#]"
	asciiIconHome      = "⌂"
	asciiIconCart      = "[+]"
	asciiIconOrders    = "≡"
	asciiIconCustomers = "@"
	asciiIconProducts  = "□"
	asciiIconInventory = "▤"
	asciiIconReports   = "▥"
	asciiIconPayments  = "$"
	asciiIconShift     = "◷"
	asciiIconSettings  = "*"
	asciiIconDashboard = "◔"
	asciiIconLogout    = "⇥"
	asciiIconBullet    = "•"
	asciiIconFocus     = "▶"
)

type iconPair struct {
	nerd  string
	ascii string
}

// iconRegistry maps canonical icon descriptors to their glyphs.
var iconRegistry = map[string]iconPair{
	"logo":      {nerdIconLogo, asciiIconLogo},
	"home":      {nerdIconHome, asciiIconHome},
	"cart":      {nerdIconCart, asciiIconCart},
	"orders":    {nerdIconOrders, asciiIconOrders},
	"customers": {nerdIconCustomers, asciiIconCustomers},
	"products":  {nerdIconProducts, asciiIconProducts},
	"inventory": {nerdIconInventory, asciiIconInventory},
	"reports":   {nerdIconReports, asciiIconReports},
	"payments":  {nerdIconPayments, asciiIconPayments},
	"shift":     {nerdIconShift, asciiIconShift},
	"settings":  {nerdIconSettings, asciiIconSettings},
	"dashboard": {nerdIconDashboard, asciiIconDashboard},
	"logout":    {nerdIconLogout, asciiIconLogout},
	"bullet":    {nerdIconBullet, asciiIconBullet},
	"focus":     {nerdIconFocus, asciiIconFocus},
}

// iconAliases lets module names double as icon descriptors.
var iconAliases = map[string]string{
	"create-order":  "cart",
	"new-order":     "cart",
	"pos":           "cart",
	"my-orders":     "orders",
	"order-history": "orders",
	"items":         "products",
	"item":          "products",
	"stock":         "inventory",
	"closing-shift": "shift",
	"opening-shift": "shift",
	"sign-out":      "logout",
	"log-out":       "logout",
	"preferences":   "settings",
}

var (
	iconMu   sync.RWMutex
	useASCII = os.Getenv("NAVPANEL_ICONS") == "ascii"
)

// UseASCIIIcons switches every glyph lookup to the ASCII fallback set.
func UseASCIIIcons(ascii bool) {
	iconMu.Lock()
	defer iconMu.Unlock()
	useASCII = ascii
}

// ASCIIIcons reports whether the ASCII fallback set is in use.
func ASCIIIcons() bool {
	iconMu.RLock()
	defer iconMu.RUnlock()
	return useASCII
}

// Glyph returns the glyph for an icon descriptor. Descriptors are matched
// case-insensitively, with spaces and underscores treated as dashes.
// Unknown descriptors render as a bullet.
func Glyph(descriptor string) string {
	pair, ok := lookupIcon(descriptor)
	if !ok {
		pair = iconRegistry["bullet"]
	}
	if ASCIIIcons() {
		return pair.ascii
	}
	return pair.nerd
}

// HasIcon reports whether descriptor resolves to a registered icon.
func HasIcon(descriptor string) bool {
	_, ok := lookupIcon(descriptor)
	return ok
}

// IconNames returns the canonical icon descriptors.
func IconNames() []string {
	names := make([]string, 0, len(iconRegistry))
	for name := range iconRegistry {
		names = append(names, name)
	}
	return names
}

func lookupIcon(descriptor string) (iconPair, bool) {
	key := normalizeThemeName(descriptor)
	if alias, ok := iconAliases[key]; ok {
		key = alias
	}
	pair, ok := iconRegistry[key]
	return pair, ok
}
