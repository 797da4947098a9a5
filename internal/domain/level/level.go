package level

import "strings"

// PredefinedLevelIDs — встроенные уровни головоломки.
var PredefinedLevelIDs = []string{"level_1", "level_2"}

// ReflexLevels — реакционные уровни и число раундов в каждом.
var ReflexLevels = map[string]int{
	"reflex_1": 5,
	"reflex_2": 10,
	"reflex_3": 15,
}

// IsPredefined сообщает, встроенный ли это уровень головоломки.
func IsPredefined(id string) bool {
	for _, known := range PredefinedLevelIDs {
		if known == id {
			return true
		}
	}
	return false
}

// IsReflex сообщает, реакционный ли уровень. Такие уровни
// сортируются в таблице лидеров по времени.
func IsReflex(id string) bool {
	return strings.HasPrefix(id, "reflex_")
}

// IsKnown сообщает, известен ли уровень клиенту.
func IsKnown(id string) bool {
	if IsPredefined(id) {
		return true
	}
	_, ok := ReflexLevels[id]
	return ok
}

// RandomParFromSeed детерминированно считает "пар" случайного уровня
// по сиду. Используется только для отображения.
func RandomParFromSeed(seed string) int {
	var h uint32
	for i := 0; i < len(seed); i++ {
		h = h*31 + uint32(seed[i])
	}
	return 10 + int(h%41)
}
