package services

import (
	"context"
	"sort"
	"strings"

	"hms/dto"
	apperrors "hms/errors"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const searchSimilarityThreshold = 0.45

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// SearchItems tìm item active theo tên gần đúng: chuẩn hóa dấu, so khớp
// closestmatch rồi chấm điểm levenshtein, trả về theo điểm giảm dần.
func (s *ItemService) SearchItems(ctx context.Context, query string) ([]dto.ItemSearchResult, error) {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return nil, apperrors.NewInvalidInput("Search query is required")
	}

	items, err := s.GetItems(ctx, "")
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []dto.ItemSearchResult{}, nil
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, normalizeInput(item.Name))
	}
	matcher := createMatcher(names)
	closest := matcher.Closest(normalizedQuery)

	var results []dto.ItemSearchResult
	for i, item := range items {
		normalizedName := names[i]
		score := calculateSimilarity(normalizedQuery, normalizedName)

		// Khớp chuỗi con vẫn được tính là kết quả tốt
		if substringScore := searchSimilarityThreshold + (1.0-searchSimilarityThreshold)/2; strings.Contains(normalizedName, normalizedQuery) && score < substringScore {
			score = substringScore
		}
		if normalizedName == closest && score < searchSimilarityThreshold {
			score = searchSimilarityThreshold
		}
		if score < searchSimilarityThreshold {
			continue
		}

		results = append(results, dto.ItemSearchResult{
			ItemResponse: item,
			Score:        score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if results == nil {
		results = []dto.ItemSearchResult{}
	}
	return results, nil
}
