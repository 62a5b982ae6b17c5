package lang

// Porter stemmer, adapted from the classic ANSI-C algorithm (Porter,
// 1980, "An algorithm for suffix stripping") by way of the Go port
// at github.com/a2800276/porter. Unlike that port, stemLength never
// mutates the caller's word: it works on a private copy and reports
// only the resulting stem length, since the tokenizer only needs the
// boundary, not a rewritten word.

type porterStemmer struct {
	b []rune
	j int
	k int
}

func (z *porterStemmer) consonant(pos int) bool {
	if pos >= len(z.b) {
		return false
	}
	switch z.b[pos] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if pos == 0 {
			return true
		}
		return !z.consonant(pos - 1)
	}
	return true
}

func (z *porterStemmer) vowel(pos int) bool { return !z.consonant(pos) }

// m measures the number of consonant-sequence/vowel-sequence
// alternations between 0 and j.
func (z *porterStemmer) m() int {
	i, n := 0, 0
	for {
		if i > z.j {
			return n
		}
		if !z.consonant(i) {
			break
		}
		i++
	}
	i++
	for {
		for {
			if i > z.j {
				return n
			}
			if z.consonant(i) {
				break
			}
			i++
		}
		i++
		n++
		for {
			if i > z.j {
				return n
			}
			if !z.consonant(i) {
				break
			}
			i++
		}
		i++
	}
}

func (z *porterStemmer) vowelInStem() bool {
	for i := 0; i <= z.j; i++ {
		if !z.consonant(i) {
			return true
		}
	}
	return false
}

func (z *porterStemmer) doublec(j int) bool {
	if j < 1 {
		return false
	}
	if z.b[j] != z.b[j-1] {
		return false
	}
	return z.consonant(j)
}

// cvc is true iff i-2,i-1,i is consonant-vowel-consonant and the
// final consonant isn't w, x or y.
func (z *porterStemmer) cvc(i int) bool {
	if i < 2 || !z.consonant(i) || z.consonant(i-1) || !z.consonant(i-2) {
		return false
	}
	switch z.b[i] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}

func (z *porterStemmer) ends(s string) bool {
	rs := []rune(s)
	length := len(rs)
	if length > z.k+1 {
		return false
	}
	start := z.k + 1 - length
	for i := 0; i < length; i++ {
		if z.b[start+i] != rs[i] {
			return false
		}
	}
	z.j = z.k - length
	return true
}

func (z *porterStemmer) setto(s string) {
	rs := []rune(s)
	j := z.j
	for _, r := range rs {
		j++
		z.b[j] = r
	}
	z.k = j
}

func (z *porterStemmer) r(s string) {
	if z.m() > 0 {
		z.setto(s)
	}
}

func (z *porterStemmer) step1ab() {
	if z.b[z.k] == 's' {
		switch {
		case z.ends("sses"):
			z.k -= 2
		case z.ends("ies"):
			z.setto("i")
		default:
			if z.k == 0 || z.b[z.k-1] != 's' {
				z.k--
			}
		}
	}
	if z.ends("eed") {
		if z.m() > 0 {
			z.k--
		}
	} else if (z.ends("ed") || z.ends("ing")) && z.vowelInStem() {
		z.k = z.j
		switch {
		case z.ends("at"):
			z.setto("ate")
		case z.ends("bl"):
			z.setto("ble")
		case z.ends("iz"):
			z.setto("ize")
		case z.doublec(z.k):
			z.k--
			switch z.b[z.k] {
			case 'l', 's', 'z':
				z.k++
			}
		default:
			if z.m() == 1 && z.cvc(z.k) {
				z.setto("e")
			}
		}
	}
}

func (z *porterStemmer) step1c() {
	if z.ends("y") && z.vowelInStem() {
		z.b[z.k] = 'i'
	}
}

func (z *porterStemmer) step2() {
	if z.k == 0 {
		return
	}
	switch z.b[z.k-1] {
	case 'a':
		switch {
		case z.ends("ational"):
			z.r("ate")
		case z.ends("tional"):
			z.r("tion")
		}
	case 'c':
		switch {
		case z.ends("enci"):
			z.r("ence")
		case z.ends("anci"):
			z.r("ance")
		}
	case 'e':
		if z.ends("izer") {
			z.r("ize")
		}
	case 'l':
		switch {
		case z.ends("bli"):
			z.r("ble")
		case z.ends("alli"):
			z.r("al")
		case z.ends("entli"):
			z.r("ent")
		case z.ends("eli"):
			z.r("e")
		case z.ends("ousli"):
			z.r("ous")
		}
	case 'o':
		switch {
		case z.ends("ization"):
			z.r("ize")
		case z.ends("ation"):
			z.r("ate")
		case z.ends("ator"):
			z.r("ate")
		}
	case 's':
		switch {
		case z.ends("alism"):
			z.r("al")
		case z.ends("iveness"):
			z.r("ive")
		case z.ends("fulness"):
			z.r("ful")
		case z.ends("ousness"):
			z.r("ous")
		}
	case 't':
		switch {
		case z.ends("aliti"):
			z.r("al")
		case z.ends("iviti"):
			z.r("ive")
		case z.ends("biliti"):
			z.r("ble")
		}
	case 'g':
		if z.ends("logi") {
			z.r("log")
		}
	}
}

func (z *porterStemmer) step3() {
	switch z.b[z.k] {
	case 'e':
		switch {
		case z.ends("icate"):
			z.r("ic")
		case z.ends("ative"):
			z.r("")
		case z.ends("alize"):
			z.r("al")
		}
	case 'i':
		if z.ends("iciti") {
			z.r("ic")
		}
	case 'l':
		switch {
		case z.ends("ical"):
			z.r("ic")
		case z.ends("ful"):
			z.r("")
		}
	case 's':
		if z.ends("ness") {
			z.r("")
		}
	}
}

func (z *porterStemmer) step4() {
	if z.k == 0 {
		return
	}
	update := func() {
		if z.m() > 1 {
			z.k = z.j
		}
	}
	switch z.b[z.k-1] {
	case 'a':
		if z.ends("al") {
			update()
		}
	case 'c':
		if z.ends("ance") || z.ends("ence") {
			update()
		}
	case 'e':
		if z.ends("er") {
			update()
		}
	case 'i':
		if z.ends("ic") {
			update()
		}
	case 'l':
		if z.ends("able") || z.ends("ible") {
			update()
		}
	case 'n':
		if z.ends("ant") || z.ends("ement") || z.ends("ment") || z.ends("ent") {
			update()
		}
	case 'o':
		if z.ends("ou") {
			update()
		}
		if z.ends("ion") && (z.b[z.j] == 's' || z.b[z.j] == 't') {
			update()
		}
	case 's':
		if z.ends("ism") {
			update()
		}
	case 't':
		if z.ends("ate") || z.ends("iti") {
			update()
		}
	case 'u':
		if z.ends("ous") {
			update()
		}
	case 'v':
		if z.ends("ive") {
			update()
		}
	case 'z':
		if z.ends("ize") {
			update()
		}
	}
}

func (z *porterStemmer) step5() {
	z.j = z.k
	if z.b[z.k] == 'e' {
		a := z.m()
		if a > 1 || (a == 1 && !z.cvc(z.k-1)) {
			z.k--
		}
	}
	if z.b[z.k] == 'l' && z.doublec(z.k) && z.m() > 1 {
		z.k--
	}
}

// stemLength runs the algorithm on a private copy of word (already
// lowercased) and returns the resulting stem length, clamped to
// len(word) as a safety net against any off-by-one in a single-letter
// input.
func stemLength(word []rune) int {
	n := len(word)
	if n == 0 {
		return 0
	}
	if n <= 2 {
		return n
	}
	z := &porterStemmer{b: append([]rune(nil), word...), j: 0, k: n - 1}
	z.step1ab()
	z.step1c()
	z.step2()
	z.step3()
	z.step4()
	z.step5()
	length := z.k + 1
	if length < 0 {
		length = 0
	}
	if length > n {
		length = n
	}
	return length
}
