package signals

// commonWords is the dictionary used to decompose compound brand tokens.
// Both halves of a split must appear here. The list leans toward the short
// words startups glue together into names.
var commonWords = map[string]struct{}{} //nolint: gochecknoglobals

//nolint: gochecknoinits
func init() {
	for _, w := range []string{
		"air", "app", "apps", "base", "bear", "best", "big", "bird", "bite",
		"blue", "board", "bolt", "book", "boost", "box", "brain", "bright",
		"build", "buzz", "cabbage", "camp", "car", "card", "care", "cart",
		"cash", "chat", "check", "chimp", "class", "clear", "click", "cloud",
		"club", "coach", "code", "coin", "cook", "cool", "craft", "crew",
		"dash", "data", "day", "deal", "deep", "desk", "dish", "dock", "door",
		"drop", "easy", "eat", "edge", "far", "fast", "feed", "find", "fire",
		"fish", "fit", "flake", "flash", "flow", "fly", "food", "force",
		"forge", "fox", "fresh", "front", "fuel", "fun", "game", "gear",
		"gem", "gift", "good", "grab", "graph", "green", "grid", "grow",
		"grub", "guide", "hack", "hand", "happy", "head", "health", "help",
		"hero", "high", "hive", "home", "hook", "host", "house", "hub",
		"hunt", "jet", "jump", "kit", "lab", "labs", "land", "launch",
		"leaf", "lean", "life", "lift", "light", "line", "link", "list",
		"live", "local", "lock", "log", "logic", "loop", "mail", "map",
		"mark", "market", "mate", "meal", "meet", "mind", "mint", "moon",
		"nest", "net", "news", "next", "night", "ninja", "note", "now",
		"open", "pad", "page", "paper", "pass", "path", "pay", "peak",
		"pen", "pet", "pilot", "pin", "pixel", "plan", "plant", "play",
		"point", "post", "press", "prime", "print", "pro", "product",
		"pulse", "push", "quick", "radar", "rain", "ramp", "reach", "read",
		"rent", "rise", "road", "rock", "rocket", "room", "root", "run",
		"sales", "scan", "scout", "sea", "seed", "seek", "send", "seo",
		"shark", "sharp", "shift", "shine", "ship", "shop", "side", "sign",
		"site", "sky", "smart", "snap", "snow", "social", "soft", "space",
		"spark", "spot", "spring", "sprout", "square", "stack", "star",
		"start", "stay", "step", "stock", "stone", "store", "storm",
		"stream", "street", "studio", "style", "sun", "super", "swift",
		"table", "tail", "talk", "task", "team", "tech", "time", "tiny",
		"tool", "tools", "top", "touch", "track", "trade", "trail", "tree",
		"trek", "trip", "true", "trust", "turbo", "view", "watch", "wave",
		"way", "web", "well", "wide", "wind", "wise", "wish", "wolf", "wood",
		"word", "work", "world", "yard", "zen", "zone", "zoom",
	} {
		commonWords[w] = struct{}{}
	}
}
