package service

// FilterKind controls how a query parameter is parsed before it is compared.
type FilterKind int

const (
	FilterString FilterKind = iota
	FilterBool
	FilterInt
	FilterDate
)

// Filter maps a query parameter onto an equality match against a column.
type Filter struct {
	Param  string
	Column string
	Kind   FilterKind
}

// Query lists the filters and search columns a caller may use.
type Query struct {
	Filters []Filter
	Search  []string
}

// Relation is an optional foreign key accepted on input.
type Relation struct {
	Field  string
	Table  string
	Column string
}

// Resource is one row of the static registration table consumed by the
// router and the generic store.
type Resource struct {
	Name       string
	Label      string
	Path       string
	Lookup     string
	Visibility string
	Ordering   []string
	Preload    []string
	Relations  []Relation
	Media      []string
	Public     Query
	Admin      Query
}

var practiceAreaRelation = Relation{Field: "practice_area", Table: "practice_areas", Column: "practice_area_id"}

var (
	PracticeAreaResource = Resource{
		Name:       "PracticeArea",
		Label:      "practice area",
		Path:       "practice-areas",
		Lookup:     "slug",
		Visibility: "is_active",
		Ordering:   []string{"sort_order asc", "title asc"},
		Admin: Query{
			Filters: []Filter{{Param: "is_active", Column: "is_active", Kind: FilterBool}},
			Search:  []string{"title", "description"},
		},
	}

	TeamMemberResource = Resource{
		Name:       "TeamMember",
		Label:      "team member",
		Path:       "team",
		Lookup:     "slug",
		Visibility: "is_active",
		Ordering:   []string{"sort_order asc", "name asc"},
		Media:      []string{"image"},
		Admin: Query{
			Filters: []Filter{
				{Param: "role", Column: "role"},
				{Param: "is_active", Column: "is_active", Kind: FilterBool},
			},
			Search: []string{"name", "specialization"},
		},
	}

	NewsArticleResource = Resource{
		Name:       "NewsArticle",
		Label:      "news article",
		Path:       "news",
		Lookup:     "slug",
		Visibility: "is_published",
		Ordering:   []string{"published_date desc", "created_at desc"},
		Preload:    []string{"Author"},
		Public: Query{
			Filters: []Filter{{Param: "category", Column: "category"}},
			Search:  []string{"title", "summary"},
		},
		Media: []string{"image"},
		Admin: Query{
			Filters: []Filter{
				{Param: "category", Column: "category"},
				{Param: "is_published", Column: "is_published", Kind: FilterBool},
				{Param: "published_date", Column: "published_date", Kind: FilterDate},
			},
			Search: []string{"title", "summary", "content"},
		},
	}

	ServiceResource = Resource{
		Name:       "Service",
		Label:      "service",
		Path:       "services",
		Lookup:     "slug",
		Visibility: "is_active",
		Ordering:   []string{"sort_order asc", "title asc"},
		Admin: Query{
			Filters: []Filter{
				{Param: "category", Column: "category"},
				{Param: "is_active", Column: "is_active", Kind: FilterBool},
			},
			Search: []string{"title", "description"},
		},
	}

	CaseStudyResource = Resource{
		Name:       "CaseStudy",
		Label:      "case study",
		Path:       "case-studies",
		Lookup:     "slug",
		Visibility: "is_published",
		Ordering:   []string{"sort_order asc", "created_at desc"},
		Preload:    []string{"PracticeArea"},
		Relations:  []Relation{practiceAreaRelation},
		Media:      []string{"image"},
		Admin: Query{
			Filters: []Filter{
				{Param: "is_published", Column: "is_published", Kind: FilterBool},
				{Param: "practice_area", Column: "practice_area_id", Kind: FilterInt},
			},
			Search: []string{"title", "client_name"},
		},
	}

	TestimonialResource = Resource{
		Name:       "Testimonial",
		Label:      "testimonial",
		Path:       "testimonials",
		Lookup:     "id",
		Visibility: "is_published",
		Ordering:   []string{"sort_order asc", "created_at desc"},
		Preload:    []string{"PracticeArea"},
		Relations:  []Relation{practiceAreaRelation},
		Media:      []string{"client_image"},
		Admin: Query{
			Filters: []Filter{
				{Param: "rating", Column: "rating", Kind: FilterInt},
				{Param: "is_featured", Column: "is_featured", Kind: FilterBool},
				{Param: "is_published", Column: "is_published", Kind: FilterBool},
			},
			Search: []string{"client_name", "content"},
		},
	}

	FAQResource = Resource{
		Name:       "FAQ",
		Label:      "faq",
		Path:       "faqs",
		Lookup:     "id",
		Visibility: "is_published",
		Ordering:   []string{"sort_order asc", "question asc"},
		Admin: Query{
			Filters: []Filter{
				{Param: "category", Column: "category"},
				{Param: "is_published", Column: "is_published", Kind: FilterBool},
			},
			Search: []string{"question", "answer"},
		},
	}

	EnquiryResource = Resource{
		Name:     "Enquiry",
		Label:    "enquiry",
		Path:     "enquiries",
		Lookup:   "id",
		Ordering: []string{"created_at desc"},
		Admin: Query{
			Filters: []Filter{
				{Param: "matter_type", Column: "matter_type"},
				{Param: "status", Column: "status"},
				{Param: "created_at", Column: "created_at", Kind: FilterDate},
			},
			Search: []string{"name", "email", "subject"},
		},
	}

	AppointmentResource = Resource{
		Name:     "Appointment",
		Label:    "appointment",
		Path:     "appointments",
		Lookup:   "id",
		Ordering: []string{"preferred_date desc", "preferred_time desc"},
		Admin: Query{
			Filters: []Filter{
				{Param: "status", Column: "status"},
				{Param: "preferred_date", Column: "preferred_date", Kind: FilterDate},
			},
			Search: []string{"name", "email"},
		},
	}

	SubscriberResource = Resource{
		Name:     "NewsletterSubscriber",
		Label:    "newsletter subscriber",
		Path:     "subscribers",
		Lookup:   "id",
		Ordering: []string{"subscribed_at desc"},
		Admin: Query{
			Filters: []Filter{
				{Param: "is_active", Column: "is_active", Kind: FilterBool},
				{Param: "subscribed_at", Column: "subscribed_at", Kind: FilterDate},
			},
			Search: []string{"email", "name"},
		},
	}

	CareerResource = Resource{
		Name:     "CareerApplication",
		Label:    "career application",
		Path:     "careers",
		Lookup:   "id",
		Ordering: []string{"created_at desc"},
		Media:    []string{"resume"},
		Admin: Query{
			Filters: []Filter{
				{Param: "status", Column: "status"},
				{Param: "created_at", Column: "created_at", Kind: FilterDate},
			},
			Search: []string{"name", "email", "position"},
		},
	}

	SEOResource = Resource{
		Name:     "SEOMetadata",
		Label:    "seo metadata",
		Path:     "seo",
		Lookup:   "page_name",
		Ordering: []string{"page_name asc"},
		Media:    []string{"og_image"},
		Admin: Query{
			Search: []string{"page_name", "title"},
		},
	}

	ActivityLogResource = Resource{
		Name:     "ActivityLog",
		Label:    "activity log",
		Path:     "activity-logs",
		Lookup:   "id",
		Ordering: []string{"timestamp desc"},
		Preload:  []string{"User"},
		Admin: Query{
			Filters: []Filter{
				{Param: "model_name", Column: "model_name"},
				{Param: "timestamp", Column: "timestamp", Kind: FilterDate},
			},
			Search: []string{"action", "details"},
		},
	}
)

// Resources is the registration table for every admin resource, in menu order.
var Resources = []Resource{
	PracticeAreaResource,
	TeamMemberResource,
	NewsArticleResource,
	ServiceResource,
	CaseStudyResource,
	TestimonialResource,
	FAQResource,
	EnquiryResource,
	AppointmentResource,
	SubscriberResource,
	CareerResource,
	SEOResource,
	ActivityLogResource,
}
