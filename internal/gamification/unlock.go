package gamification

// IsChapterUnlocked: chapter 1 is always open, later ones open one past the furthest chapter read.
func IsChapterUnlocked(n, lastChapterRead int) bool {
	if n < 1 {
		return false
	}
	return n == 1 || n <= lastChapterRead+1
}

func BookPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return min(100, 100*completed/total)
}
