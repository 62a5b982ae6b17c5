package engine

import "github.com/otterbloom/suggestengine/lang"

// classCost is the substitution/insert/delete cost for a character of
// the given class, per spec.md 4.2's cost table.
func classCost(c lang.CharClass) float64 {
	switch c {
	case lang.ClassConsonant:
		return 1.0
	case lang.ClassVowel, lang.ClassNotAlpha:
		return 0.5
	default:
		return 1.0
	}
}

const transposeCost = 0.5

// Distance computes the weighted Damerau-Levenshtein distance between
// two words, using ctx's reused scratch matrix. a/b are a word's
// chars; classesA/classesB are the parallel per-character classes
// used to weight substitution, insertion and deletion.
func Distance(ctx *Context, a []rune, classesA []lang.CharClass, b []rune, classesB []lang.CharClass) float64 {
	la, lb := len(a), len(b)
	d := &ctx.dl
	d.ensure(la+2, lb+2)
	clear(d.lastSeen)

	maxdist := float64(la + lb + 1)

	d.set(0, 0, maxdist)
	for i := 0; i <= la; i++ {
		d.set(i+1, 0, maxdist)
		d.set(i+1, 1, float64(i))
	}
	for j := 0; j <= lb; j++ {
		d.set(0, j+1, maxdist)
		d.set(1, j+1, float64(j))
	}

	for i := 1; i <= la; i++ {
		db := 0
		ca := a[i-1]
		for j := 1; j <= lb; j++ {
			cb := b[j-1]
			i1 := d.lastSeen[cb]
			j1 := db

			var subCost float64
			if ca == cb {
				subCost = 0
				db = j
			} else {
				subCost = max64(classCost(classesA[i-1]), classCost(classesB[j-1]))
			}

			insCost := classCost(classesB[j-1])
			if j >= 2 && b[j-2] == cb {
				insCost = min64(insCost, 0.5)
			}
			delCost := classCost(classesA[i-1])
			if i >= 2 && a[i-2] == ca {
				delCost = min64(delCost, 0.5)
			}

			substitution := d.at(i, j) + subCost
			insertion := d.at(i+1, j) + insCost
			deletion := d.at(i, j+1) + delCost
			transposition := d.at(i1, j1) + transposeCost*(float64(i-i1-1)+float64(j-j1-1)+1)

			best := substitution
			if insertion < best {
				best = insertion
			}
			if deletion < best {
				best = deletion
			}
			if transposition < best {
				best = transposition
			}
			d.set(i+1, j+1, best)
		}
		d.lastSeen[ca] = i
	}

	return d.at(la+1, lb+1)
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
