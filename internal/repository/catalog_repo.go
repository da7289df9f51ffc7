package repository

import (
	"pawtrait/internal/entities"
)

const defaultHoldMinutes = 60

var packages = []entities.Package{
	{
		ID:              "mini",
		Name:            "Mini Session",
		PriceUSD:        149,
		Includes:        []string{"30 minutes", "10 edited photos", "1 pet", "Online gallery"},
		DurationMinutes: 30,
	},
	{
		ID:              "classic",
		Name:            "Classic Session",
		PriceUSD:        299,
		Includes:        []string{"60 minutes", "25 edited photos", "Up to 2 pets", "2 locations or backdrops", "Online gallery + print rights"},
		Featured:        true,
		DurationMinutes: 60,
	},
	{
		ID:              "deluxe",
		Name:            "Deluxe Session",
		PriceUSD:        499,
		Includes:        []string{"120 minutes", "All best shots (60+)", "Multiple pets", "Studio-style lighting kit", "Keepsake photo book"},
		DurationMinutes: 120,
	},
}

var gallery = []string{
	"https://images.unsplash.com/photo-1517849845537-4d257902454a?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1494256997604-768d1f608cac?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1543466835-00a7907e9de1?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1546182990-dffeafbe841d?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1537151625747-768eb6cf92b6?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1568572933382-74d440642117?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1530281700549-e82e7bf110d6?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1530281690372-382f87f1ab66?q=80&w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1548199973-03cce0bbc87b?q=80&w=1200&auto=format&fit=crop",
}

const heroImageCount = 6

var testimonials = []entities.Testimonial{
	{Name: "Taylor & Mochi", Text: "Absolutely obsessed! Patient, playful, and the photos are stunning.", Rating: 5},
	{Name: "Jordan & Nala", Text: "They captured Nala’s goofy side and her sweet cuddles. 10/10!", Rating: 5},
	{Name: "Sam & Pico", Text: "Professional, quick, and thoughtful with shy pets.", Rating: 5},
}

var faq = []entities.FAQEntry{
	{Question: "Do you work with all pets?", Answer: "Yes! Dogs, cats, rabbits, birds, reptiles — we love them all. We tailor the session to your pet’s comfort."},
	{Question: "Where do shoots happen?", Answer: "We offer in-home, outdoor parks, and pop-up studio setups. We’ll help you choose the best option."},
	{Question: "How do we get our photos?", Answer: "You’ll receive an online gallery to download and order prints. Turnaround is typically 1–2 weeks."},
}

// CatalogRepository serves the studio's fixed catalogs. The tables are built
// at process start and never change; every accessor hands out copies.
type CatalogRepository struct {
	packages     []entities.Package
	byID         map[string]int
	gallery      []string
	testimonials []entities.Testimonial
	faq          []entities.FAQEntry
}

func NewCatalogRepository() *CatalogRepository {
	r := &CatalogRepository{
		packages:     packages,
		byID:         make(map[string]int, len(packages)),
		gallery:      gallery,
		testimonials: testimonials,
		faq:          faq,
	}
	for i, p := range r.packages {
		r.byID[p.ID] = i
	}
	return r
}

func (r *CatalogRepository) GetPackages() []entities.Package {
	out := make([]entities.Package, len(r.packages))
	for i, p := range r.packages {
		out[i] = copyPackage(p)
	}
	return out
}

func (r *CatalogRepository) GetPackage(id string) (entities.Package, bool) {
	i, ok := r.byID[id]
	if !ok {
		return entities.Package{}, false
	}
	return copyPackage(r.packages[i]), true
}

// DefaultPackage is the package preselected on the booking form.
func (r *CatalogRepository) DefaultPackage() entities.Package {
	p, _ := r.GetPackage("classic")
	return p
}

// HoldDuration returns the calendar-hold length for a package id, falling
// back to an hour for ids that are not in the catalog.
func (r *CatalogRepository) HoldDuration(id string) int {
	if p, ok := r.GetPackage(id); ok && p.DurationMinutes > 0 {
		return p.DurationMinutes
	}
	return defaultHoldMinutes
}

func (r *CatalogRepository) GetGallery() []string {
	return append([]string(nil), r.gallery...)
}

func (r *CatalogRepository) GetHeroImages() []string {
	n := heroImageCount
	if n > len(r.gallery) {
		n = len(r.gallery)
	}
	return append([]string(nil), r.gallery[:n]...)
}

func (r *CatalogRepository) GetTestimonials() []entities.Testimonial {
	return append([]entities.Testimonial(nil), r.testimonials...)
}

func (r *CatalogRepository) GetFAQ() []entities.FAQEntry {
	return append([]entities.FAQEntry(nil), r.faq...)
}

func copyPackage(p entities.Package) entities.Package {
	p.Includes = append([]string(nil), p.Includes...)
	return p
}
