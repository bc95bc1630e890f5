// Package cache guarda en memoria lecturas renderizadas por ruta y las invalida
// cuando una mutación revalida esa ruta.
package cache

import (
	"strings"
	"sync"
)

// PathCache cache de respuestas agrupadas por ruta. Cada ruta tiene varias entradas
// (ej. una por combinación de query y page). Seguro para uso concurrente.
//
// Cada ruta lleva una generación que RevalidatePath incrementa. Una lectura que empezó
// antes de una revalidación no puede volver a poblar el cache: ver SetIfCurrent.
type PathCache struct {
	mu          sync.RWMutex
	entries     map[string]map[string][]byte
	generations map[string]uint64
	hits        uint64
	misses      uint64
}

// NewPathCache construye un cache vacío.
func NewPathCache() *PathCache {
	return &PathCache{
		entries:     make(map[string]map[string][]byte),
		generations: make(map[string]uint64),
	}
}

// Generation generación actual de path. Se toma antes de consultar la fuente de datos.
func (c *PathCache) Generation(path string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generations[normalize(path)]
}

// Get devuelve la entrada key de path, si existe.
func (c *PathCache) Get(path, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	body, ok := c.entries[normalize(path)][key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return body, ok
}

// Set guarda body como entrada key de path.
func (c *PathCache) Set(path, key string, body []byte) {
	path = normalize(path)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(path, key, body)
}

// SetIfCurrent guarda body solo si path sigue en la generación gen; si hubo una
// revalidación desde entonces el cuerpo puede estar viejo y se descarta.
// Devuelve true si quedó guardado.
func (c *PathCache) SetIfCurrent(path, key string, gen uint64, body []byte) bool {
	path = normalize(path)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[path] != gen {
		return false
	}
	c.store(path, key, body)
	return true
}

func (c *PathCache) store(path, key string, body []byte) {
	bucket, ok := c.entries[path]
	if !ok {
		bucket = make(map[string][]byte)
		c.entries[path] = bucket
	}
	bucket[key] = append([]byte(nil), body...)
}

// RevalidatePath descarta todas las entradas de path; la próxima lectura va a la base de datos.
func (c *PathCache) RevalidatePath(path string) {
	path = normalize(path)
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
	c.generations[path]++
}

// Len número de entradas guardadas para path.
func (c *PathCache) Len(path string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries[normalize(path)])
}

// Stats aciertos y fallos acumulados de Get.
func (c *PathCache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// normalize quita la barra final para que "/x" y "/x/" sean la misma ruta.
func normalize(path string) string {
	if len(path) > 1 {
		return strings.TrimRight(path, "/")
	}
	return path
}
