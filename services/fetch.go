package services

import "sync"

// FetchAll exécute les tâches en parallèle et attend que toutes soient
// terminées, quel que soit le résultat de chacune. Chaque tâche absorbe
// ses propres erreurs en retombant sur une valeur par défaut locale :
// l'échec de l'une n'interrompt jamais les autres. Aucun ordre n'est
// garanti entre deux tâches concurrentes.
func FetchAll(tasks ...func()) {
	var wg sync.WaitGroup
	for _, task := range tasks {
		task := task
		wg.Add(1)
		go func() {
			defer wg.Done()
			task()
		}()
	}
	wg.Wait()
}
