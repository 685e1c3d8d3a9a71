package deterministicmap

import "fmt"

func SomeFunc() {
	m := map[string]int{"a": 1} // want "use of built-in map is forbidden. use DeterministicMap instead"
	for k, v := range m {
		fmt.Println(k, v)
	}
}
