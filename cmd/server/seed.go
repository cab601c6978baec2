package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/config"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/service"
	"gorm.io/gorm"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo content into an empty database",
		Long:  `Creates sample practice areas, services, FAQs and SEO entries. Does nothing once practice areas exist.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := openDatabase(config.Load())
			if err != nil {
				return err
			}
			created, err := seedDemoContent(cmd.Context(), gdb)
			if err != nil {
				return err
			}
			if created == 0 {
				slog.Info("demo content already present, skipping")
				return nil
			}
			slog.Info("demo content created", "records", created)
			return nil
		},
	}
}

// seedDemoContent fills an empty database through the same stores the API
// uses, so slugs and uniqueness follow the normal rules.
func seedDemoContent(ctx context.Context, gdb *gorm.DB) (int, error) {
	var existing int64
	if err := gdb.WithContext(ctx).Model(&db.PracticeArea{}).Count(&existing).Error; err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	created := 0
	err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		areas := service.NewStore[db.PracticeArea](tx, service.PracticeAreaResource)
		for i, item := range []struct{ title, icon, description string }{
			{"Civil Litigation", "scale", "Representation in civil suits, injunctions and recovery matters."},
			{"Corporate Law", "briefcase", "Incorporation, compliance, contracts and mergers."},
			{"Family Law", "users", "Divorce, custody, maintenance and succession."},
			{"Property Law", "home", "Title verification, RERA disputes and conveyancing."},
		} {
			area := db.PracticeArea{Title: item.title, Icon: item.icon, Description: item.description, Order: i, IsActive: true}
			if err := areas.Create(ctx, &area); err != nil {
				return err
			}
			created++
		}

		services := service.NewStore[db.Service](tx, service.ServiceResource)
		for i, item := range []struct{ title, category, description string }{
			{"Legal Consultation", db.ServiceAdvisory, "One-to-one advice on your legal position."},
			{"Contract Drafting", db.ServiceDocumentation, "Agreements drafted and reviewed by senior counsel."},
			{"Mediation", db.ServiceADR, "Out-of-court settlement through trained mediators."},
		} {
			svc := db.Service{Title: item.title, Category: item.category, Description: item.description, Order: i, IsActive: true}
			if err := services.Create(ctx, &svc); err != nil {
				return err
			}
			created++
		}

		faqs := service.NewStore[db.FAQ](tx, service.FAQResource)
		for i, item := range []struct{ question, answer string }{
			{"How do I book a consultation?", "Use the appointment form and we will confirm a slot within one working day."},
			{"What documents should I bring?", "Bring any notices, agreements and identity proof related to your matter."},
		} {
			faq := db.FAQ{Question: item.question, Answer: item.answer, Category: "general", Order: i, IsPublished: true}
			if err := faqs.Create(ctx, &faq); err != nil {
				return err
			}
			created++
		}

		seo := service.NewStore[db.SEOMetadata](tx, service.SEOResource)
		for _, item := range []struct{ page, title, description string }{
			{"home", "Advocates & Associates", "Trusted legal counsel for individuals and businesses."},
			{"contact", "Contact Us", "Reach our chambers for enquiries and appointments."},
		} {
			meta := db.SEOMetadata{PageName: item.page, Title: item.title, Description: item.description}
			if err := seo.Create(ctx, &meta); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
