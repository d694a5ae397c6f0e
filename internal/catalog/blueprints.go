package catalog

// Blueprints is the full module registry, ordered for display. Icons from the
// web client are intentionally not represented here.
var Blueprints = []Blueprint{
	{
		ID:       "auth-multi-tenant",
		Category: "saas",
		Name:     "RBAC & Multi-Tenancy",
		Badge:    "Security",
		Prompt:   "Advanced multi-tenant authentication with Row Level Security and Role-Based Access Control.",
		Subcapabilities: []Subcapability{
			{ID: "rls", Label: "Supabase RLS", Description: "Policy-driven data isolation per organization."},
			{ID: "roles", Label: "Dynamic Roles", Description: "Admin, Member, and Viewer permission levels."},
			{ID: "invites", Label: "Invite Engine", Description: "Token-based email invitations for teams."},
		},
	},
	{
		ID:       "saas-billing",
		Category: "saas",
		Name:     "Subscription Engine",
		Badge:    "Monetization",
		Prompt:   "Tiered subscription management with Stripe or LemonSqueezy integration.",
		Subcapabilities: []Subcapability{
			{ID: "tiers", Label: "Pricing Plans", Description: "Support for Free, Pro, and Enterprise tiers."},
			{ID: "webhooks", Label: "Stripe Webhooks", Description: "Listen for checkout.session.completed and subscriptions."},
			{ID: "portal", Label: "Customer Portal", Description: "Self-serve billing management for users."},
		},
	},
	{
		ID:       "saas-workspaces",
		Category: "saas",
		Name:     "Workspace Logic",
		Badge:    "Organization",
		Prompt:   "Logical separation of data into workspaces/projects within a single organization.",
		Subcapabilities: []Subcapability{
			{ID: "slugs", Label: "Subdomains/Slugs", Description: "Dynamic routing based on workspace identifiers."},
			{ID: "transfer", Label: "Resource Transfer", Description: "Workflows for moving projects between workspaces."},
			{ID: "isolation", Label: "Domain Isolation", Description: "Enforcing workspace-specific branding."},
		},
	},
	{
		ID:       "saas-entitlements",
		Category: "saas",
		Name:     "Feature Entitlements",
		Badge:    "Entitlements",
		Prompt:   "Granular control over feature access based on subscription tiers and usage quotas.",
		Subcapabilities: []Subcapability{
			{ID: "gates", Label: "Feature Gating", Description: "Logic to disable UI/API based on user plan."},
			{ID: "quotas", Label: "Usage Quotas", Description: "Tracking and enforcing limits (e.g., project counts)."},
			{ID: "addons", Label: "Add-on Logic", Description: "Unlocking modules independently of the main tier."},
		},
	},
	{
		ID:       "saas-compliance",
		Category: "saas",
		Name:     "Audit & Compliance",
		Badge:    "Enterprise",
		Prompt:   "Enterprise-grade activity logging for regulatory requirements (SOC2/HIPAA).",
		Subcapabilities: []Subcapability{
			{ID: "logging", Label: "Activity Streams", Description: "Immutable log of every sensitive action taken by users."},
			{ID: "retention", Label: "Data Retention", Description: "Automated cleanup and archival policies for logs."},
			{ID: "mfa", Label: "Enforced MFA", Description: "Organization-wide requirement for multi-factor authentication."},
		},
	},
	{
		ID:       "saas-webhooks-sys",
		Category: "saas",
		Name:     "Webhook Orchestration",
		Badge:    "Automation",
		Prompt:   "Inbound and outbound webhook systems for third-party developer integrations.",
		Subcapabilities: []Subcapability{
			{ID: "outgoing", Label: "Event Broadcast", Description: "System for users to subscribe their own URLs to app events."},
			{ID: "signing", Label: "Payload Signing", Description: "Security layer (HMAC) to ensure webhook authenticity."},
			{ID: "retry", Label: "Retry Queues", Description: "Handling delivery failures with exponential backoff."},
		},
	},
	{
		ID:       "eco-catalog",
		Category: "ecommerce",
		Name:     "Product Discovery",
		Badge:    "Storefront",
		Prompt:   "Browsing and search experience for product catalogs.",
		Subcapabilities: []Subcapability{
			{ID: "filters", Label: "Faceted Filters", Description: "Filtering by size, color, price, and category."},
			{ID: "grid", Label: "Smart Grids", Description: "Lazy-loading or paginated layouts."},
			{ID: "search", Label: "Instant Search", Description: "Type-ahead suggestions and keyword matching."},
		},
	},
	{
		ID:       "eco-checkout",
		Category: "ecommerce",
		Name:     "Checkout Funnel",
		Badge:    "Conversion",
		Prompt:   "Optimized multi-step flow from cart to confirmation.",
		Subcapabilities: []Subcapability{
			{ID: "cart", Label: "Persistent Cart", Description: "Session-synced cart with promo code logic."},
			{ID: "flow", Label: "Multi-step Pay", Description: "Shipping, address validation, and payment."},
			{ID: "upsell", Label: "Cross-selling", Description: "In-cart product recommendations."},
		},
	},
	{
		ID:       "eco-inventory",
		Category: "ecommerce",
		Name:     "Inventory & SKU Logic",
		Badge:    "Operations",
		Prompt:   "Real-time stock tracking and inventory management across multiple warehouses.",
		Subcapabilities: []Subcapability{
			{ID: "alerts", Label: "Low-stock Alerts", Description: "Automated notifications for reorder points."},
			{ID: "sku", Label: "SKU Variation MGMT", Description: "Logic for sizes, colors, and variations."},
			{ID: "history", Label: "Stock History", Description: "Audit trail for every stock change."},
		},
	},
	{
		ID:       "eco-multi-vendor",
		Category: "ecommerce",
		Name:     "Marketplace Engine",
		Badge:    "Platform",
		Prompt:   "Multi-vendor orchestration including seller onboarding and commission splitting.",
		Subcapabilities: []Subcapability{
			{ID: "payouts", Label: "Automated Payouts", Description: "Stripe Connect logic for splitting funds."},
			{ID: "seller-dash", Label: "Vendor Portal", Description: "Dedicated dashboard for sellers."},
			{ID: "approval", Label: "Product Verification", Description: "Admin workflow for reviewing listings."},
		},
	},
	{
		ID:       "book-engine",
		Category: "booking",
		Name:     "Booking Logic",
		Badge:    "Scheduling",
		Prompt:   "Advanced scheduling system with multi-timezone support, slot availability logic, and buffer times.",
		Subcapabilities: []Subcapability{
			{ID: "slots", Label: "Slot Generation", Description: "Dynamic calculation of available windows based on staff schedules."},
			{ID: "buffer", Label: "Buffer Times", Description: "Preventing back-to-back bookings with automatic gap insertion."},
			{ID: "timezone", Label: "Global Booking", Description: "Auto-conversion of slots to user browser timezone."},
		},
	},
	{
		ID:       "book-availability",
		Category: "booking",
		Name:     "Availability Management",
		Badge:    "Calendars",
		Prompt:   "Provider-facing tools to manage work hours, holidays, and sync with external calendars (iCal/Google).",
		Subcapabilities: []Subcapability{
			{ID: "cal-sync", Label: "External Sync", Description: "Two-way synchronization with Google Calendar or Outlook."},
			{ID: "recurring", Label: "Recurring Shifts", Description: "Setting weekly availability patterns (e.g., Mon-Fri 9-5)."},
			{ID: "exceptions", Label: "Blackout Dates", Description: "One-off availability overrides for vacations or sick leave."},
		},
	},
	{
		ID:       "soc-activity-feed",
		Category: "social",
		Name:     "Social Feed Engine",
		Badge:    "Engagement",
		Prompt:   "Dynamic newsfeed with personalized ranking and multi-format post support.",
		Subcapabilities: []Subcapability{
			{ID: "ranking", Label: "Edge-based Ranking", Description: "Personalized content delivery based on user interest."},
			{ID: "reactions", Label: "Rich Reactions", Description: "Handling diverse interaction types (likes, claps, custom emojis)."},
			{ID: "fanout", Label: "Write-ahead Fanout", Description: "High-performance post distribution to followers."},
		},
	},
	{
		ID:       "soc-realtime-chat",
		Category: "social",
		Name:     "Messaging Infrastructure",
		Badge:    "Real-time",
		Prompt:   "Scalable direct and group messaging with read receipts and media attachments.",
		Subcapabilities: []Subcapability{
			{ID: "threading", Label: "Message Threads", Description: "Logic for nested conversations and replies."},
			{ID: "receipts", Label: "Read Receipts", Description: "Real-time tracking of message status (sent, delivered, read)."},
			{ID: "presence", Label: "Typing Indicators", Description: "Ephemeral socket events for active user states."},
		},
	},
	{
		ID:       "soc-social-graph",
		Category: "social",
		Name:     "Relationship Graph",
		Badge:    "Connections",
		Prompt:   "Advanced follower/following logic with mutual friend detection and blocking.",
		Subcapabilities: []Subcapability{
			{ID: "mutuals", Label: "Mutual Discovery", Description: "Logic for identifying common connections."},
			{ID: "blocking", Label: "Privacy Hardening", Description: "Enforcing strict content hiding for blocked users."},
		},
	},
	{
		ID:       "ai-multimodal-vision",
		Category: "ai",
		Name:     "Multimodal Vision",
		Badge:    "AI",
		Prompt:   "Image and video analysis workflows for automated tagging, captioning, or OCR.",
		Subcapabilities: []Subcapability{
			{ID: "tagging", Label: "Auto-Tagging", Description: "Generating metadata from visual inputs."},
			{ID: "ocr", Label: "Visual Data Parsing", Description: "Extracting complex table data from images."},
			{ID: "qc", Label: "Visual QA", Description: "Automated quality checks or anomaly detection."},
		},
	},
	{
		ID:       "mkt-pricing-dynamic",
		Category: "marketing",
		Name:     "Pricing Strategy",
		Badge:    "Conversion",
		Prompt:   "Conversion-optimized pricing tables with complex logic.",
		Subcapabilities: []Subcapability{
			{ID: "toggle", Label: "Bill Cycle Toggle", Description: "Monthly vs Annual with discount visualizer."},
			{ID: "faq", Label: "Price-Context FAQ", Description: "Accordion-style answers for billing."},
			{ID: "comparison", Label: "Feature Matrix", Description: "Deep comparison table for plans."},
		},
	},
	{
		ID:       "mkt-seo-automation",
		Category: "marketing",
		Name:     "SEO Performance Kit",
		Badge:    "Growth",
		Prompt:   "Technical SEO infrastructure for maximum indexability.",
		Subcapabilities: []Subcapability{
			{ID: "metadata", Label: "Dynamic Metadata", Description: "Server-side injected meta tags."},
			{ID: "sitemap", Label: "Auto-Sitemaps", Description: "Dynamic sitemap.xml generation."},
			{ID: "og", Label: "Social Cards", Description: "Automated generation of social images."},
		},
	},
	{
		ID:       "int-crm-bridge",
		Category: "integrations",
		Name:     "CRM Automations",
		Badge:    "Sync",
		Prompt:   "Syncing application data with external CRM platforms like Hubspot or Salesforce.",
		Subcapabilities: []Subcapability{
			{ID: "leads", Label: "Lead Capture", Description: "Syncing signup events to CRM."},
			{ID: "sync", Label: "Two-way Sync", Description: "Updates between DB and customer records."},
			{ID: "tracking", Label: "Deal Pipelines", Description: "Automated deal creation."},
		},
	},
	{
		ID:       "int-payment-orchestration",
		Category: "integrations",
		Name:     "Payment Orchestration",
		Badge:    "Payments",
		Prompt:   "Unified API for multiple payment providers (Stripe, PayPal, Adyen).",
		Subcapabilities: []Subcapability{
			{ID: "failover", Label: "Smart Failover", Description: "Automatic provider switching."},
			{ID: "unified", Label: "Unified Schema", Description: "Standardizing response objects."},
			{ID: "tax", Label: "Tax Calculation", Description: "Stripe Tax or Avalara compliance."},
		},
	},
}
