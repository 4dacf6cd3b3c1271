// Package render assembles the complete HTML page from the parsed section
// records. It is pure string substitution into a fixed skeleton; every
// substitution point has a default so an empty section still renders.
//
// Values are interpolated verbatim, without HTML escaping. Sheet content is
// operator-owned and may intentionally carry inline markup.
package render

import (
	"fmt"
	"strings"

	"website_updater/internal/content"
)

const (
	maskImageLeft  = "linear-gradient(to right, rgba(0,0,0,1) 0%, rgba(0,0,0,0.8) 50%, rgba(0,0,0,0) 100%)"
	maskImageRight = "linear-gradient(to left, rgba(0,0,0,1) 0%, rgba(0,0,0,0.8) 50%, rgba(0,0,0,0) 100%)"
)

// Page renders the full document from the seven section records.
func Page(general, hero content.Fields, about content.About, values []content.CoreValue,
	services []content.Service, details []content.ServiceDetail, contact content.Fields) string {

	var sb strings.Builder
	sb.WriteString(pageHead(general.Get("site_title", "TriStar")))
	sb.WriteString(navigation(general))
	sb.WriteString(heroSection(hero))
	sb.WriteString(aboutSection(about))
	sb.WriteString(valuesSection(values))
	sb.WriteString(servicesSection(services))
	for _, detail := range details {
		sb.WriteString(detailSection(detail))
	}
	sb.WriteString(contactSection(contact))
	sb.WriteString(footer(general))
	sb.WriteString(pageScript)
	return sb.String()
}

// TextToParagraphs reflows a free-text sheet cell into paragraph blocks.
// The split chain is fixed: a literal "||" separator if present, else blank
// lines if that yields more than one piece, else single line breaks if that
// yields more than one piece, else the whole text as one paragraph.
func TextToParagraphs(text, cssClass string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	var paragraphs []string
	if strings.Contains(text, "||") {
		paragraphs = splitTrim(text, "||")
	} else {
		paragraphs = splitTrim(text, "\n\n")
		if len(paragraphs) <= 1 {
			paragraphs = splitTrim(text, "\n")
			if len(paragraphs) <= 1 {
				paragraphs = []string{strings.TrimSpace(text)}
			}
		}
	}

	blocks := make([]string, 0, len(paragraphs))
	for _, para := range paragraphs {
		blocks = append(blocks, fmt.Sprintf("                    <p class=\"%s\">\n                        %s\n                    </p>", cssClass, para))
	}
	return strings.Join(blocks, "\n")
}

// splitTrim splits on sep, trims each piece, and drops empty ones.
func splitTrim(text, sep string) []string {
	var out []string
	for _, piece := range strings.Split(text, sep) {
		if trimmed := strings.TrimSpace(piece); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// animationDelayClass staggers the reveal of grid cards: the first card has
// no delay, later cards each add 200ms.
func animationDelayClass(index int) string {
	if index == 0 {
		return ""
	}
	return fmt.Sprintf(" animation-delay-%d", (index+1)*200)
}

func pageHead(title string) string {
	return `<!DOCTYPE html>
<html lang="en" class="scroll-smooth">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>` + title + `</title>
    <script src="https://cdn.tailwindcss.com"></script>
` + pageStyle + `</head>
<body class="bg-gray-900">
`
}

// Fade-in, stagger-delay, and blob keyframes used by the reveal observer
// and the decorative section backgrounds.
const pageStyle = `    <style>
        /* Fade-in animation */
        .fade-in {
            opacity: 0;
            transform: translateY(30px);
            transition: opacity 0.8s ease-out, transform 0.8s ease-out;
        }

        .fade-in.show {
            opacity: 1;
            transform: translateY(0);
        }

        /* Animation delays */
        .animation-delay-200 {
            animation-delay: 0.2s;
        }

        .animation-delay-400 {
            animation-delay: 0.4s;
        }

        .animation-delay-600 {
            animation-delay: 0.6s;
        }

        .animation-delay-2000 {
            animation-delay: 2s;
        }

        .animation-delay-4000 {
            animation-delay: 4s;
        }

        /* Blob animation */
        @keyframes blob {
            0%, 100% {
                transform: translate(0, 0) scale(1);
            }
            25% {
                transform: translate(100px, -50px) scale(1.2);
            }
            50% {
                transform: translate(-100px, 100px) scale(0.8);
            }
            75% {
                transform: translate(50px, 50px) scale(1.1);
            }
        }

        .animate-blob {
            animation: blob 10s ease-in-out infinite;
        }
    </style>
`

func navigation(general content.Fields) string {
	return fmt.Sprintf(`    <!-- Navigation -->
    <nav class="fixed w-full bg-gray-900 bg-opacity-95 backdrop-blur-sm shadow-lg border-b border-gray-800 z-50">
        <div class="container mx-auto px-6 py-4">
            <div class="flex justify-between items-center">
                <!-- Logo with text -->
                <a href="#home" class="flex items-center">
                    <img src="%s" alt="%s Logo" class="h-10 w-auto mr-4">
                    <span class="text-4xl font-bold text-[#D81400]">%s</span>
                </a>
                <div class="hidden md:flex space-x-8">
                    <a href="#home" class="text-gray-300 hover:text-white transition">Home</a>
                    <a href="#about" class="text-gray-300 hover:text-white transition">About</a>
                    <a href="#services" class="text-gray-300 hover:text-white transition">Services</a>
                    <a href="#contact" class="text-gray-300 hover:text-white transition">Contact</a>
                </div>
                <!-- Mobile menu button -->
                <button id="mobile-menu-button" class="md:hidden text-gray-300">
                    <svg class="w-6 h-6" fill="none" stroke="currentColor" viewBox="0 0 24 24">
                        <path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M4 6h16M4 12h16M4 18h16"></path>
                    </svg>
                </button>
            </div>
            <!-- Mobile menu -->
            <div id="mobile-menu" class="hidden md:hidden mt-4 space-y-2">
                <a href="#home" class="block text-gray-300 hover:text-white transition">Home</a>
                <a href="#about" class="block text-gray-300 hover:text-white transition">About</a>
                <a href="#services" class="block text-gray-300 hover:text-white transition">Services</a>
                <a href="#contact" class="block text-gray-300 hover:text-white transition">Contact</a>
            </div>
        </div>
    </nav>

`,
		general.Get("logo_url", "images/logo.png"),
		general.Get("company_name", "TriStar"),
		general.Get("company_name", "TRI STAR"))
}

func heroSection(hero content.Fields) string {
	return fmt.Sprintf(`    <!-- Hero Section -->
    <section id="home" class="min-h-screen flex items-center justify-center bg-gradient-to-br from-blue-500 to-purple-600 text-white pt-20">
        <div class="container mx-auto px-6 text-center">
            <h1 class="text-5xl md:text-6xl font-bold mb-6">%s</h1>
            <p class="text-xl md:text-2xl mb-8 text-blue-100">%s</p>
            <a href="#about" class="inline-block bg-white text-blue-600 px-8 py-3 rounded-full font-semibold hover:bg-blue-50 transition">
                %s
            </a>
        </div>
    </section>

`,
		hero.Get("title", "Welcome to TriStar"),
		hero.Get("subtitle", "Building foundations for success"),
		hero.Get("button_text", "Learn More"))
}

func aboutSection(about content.About) string {
	title := about.Title
	if title == "" {
		title = "About Us"
	}

	var paragraphs strings.Builder
	for _, para := range about.Paragraphs {
		fmt.Fprintf(&paragraphs, `                <p class="text-lg text-gray-300 mb-6">
                    %s
                </p>
`, para)
	}

	var stats strings.Builder
	for _, stat := range about.Stats {
		fmt.Fprintf(&stats, `                    <div class="text-center">
                        <div class="text-4xl font-bold text-blue-400 mb-2">%s</div>
                        <div class="text-gray-400">%s</div>
                    </div>
`, stat.Number, stat.Label)
	}

	return fmt.Sprintf(`    <!-- About Section -->
    <section id="about" class="min-h-screen flex items-center py-20 bg-gray-800">
        <div class="container mx-auto px-6">
            <h2 class="text-4xl font-bold text-center mb-12 text-white">%s</h2>
            <div class="max-w-3xl mx-auto">
%s                <div class="grid md:grid-cols-%d gap-8 mt-12">
%s                </div>
            </div>
        </div>
    </section>

`, title, paragraphs.String(), len(about.Stats), stats.String())
}

// waveDivider is the SVG wave at the bottom of the values and services
// sections; the fill matches the next section's background.
func waveDivider(fill string) string {
	return `        <!-- Wave divider at bottom -->
        <div class="absolute bottom-0 left-0 right-0">
            <svg viewBox="0 0 1440 120" fill="none" xmlns="http://www.w3.org/2000/svg">
                <path d="M0 120L60 105C120 90 240 60 360 45C480 30 600 30 720 37.5C840 45 960 60 1080 67.5C1200 75 1320 75 1380 75L1440 75V120H1380C1320 120 1200 120 1080 120C960 120 840 120 720 120C600 120 480 120 360 120C240 120 120 120 60 120H0V120Z" fill="` + fill + `"/>
            </svg>
        </div>
`
}

func valuesSection(values []content.CoreValue) string {
	var cards strings.Builder
	for i, value := range values {
		fmt.Fprintf(&cards, `                <!-- Core Value %d -->
                <div class="group relative p-8 rounded-lg shadow-lg hover:shadow-2xl transition-all duration-300 overflow-hidden bg-gradient-to-br %s hover:scale-105 fade-in%s">
                    <div class="absolute inset-0 bg-white opacity-0 group-hover:opacity-10 transition-opacity"></div>
                    <div class="text-white text-5xl mb-4 relative z-10">%s</div>
                    <h3 class="text-2xl font-bold mb-4 text-white relative z-10">%s</h3>
                    <p class="text-white text-opacity-90 relative z-10">
                        %s
                    </p>
                </div>
`, i+1, value.Gradient, animationDelayClass(i), value.Icon, value.Title, value.Description)
	}

	return fmt.Sprintf(`    <!-- Core Values Section -->
    <section id="core-values" class="min-h-screen flex items-center py-20 bg-gray-900 relative overflow-hidden">
        <!-- Decorative elements -->
        <div class="absolute top-0 left-0 w-96 h-96 bg-purple-600 rounded-full mix-blend-lighten filter blur-2xl opacity-20 animate-blob"></div>
        <div class="absolute bottom-0 right-0 w-96 h-96 bg-pink-600 rounded-full mix-blend-lighten filter blur-2xl opacity-20 animate-blob animation-delay-4000"></div>

        <div class="container mx-auto px-6 relative z-10">
            <h2 class="text-4xl font-bold text-center mb-12 text-white fade-in">Our Core Values</h2>
            <div class="grid md:grid-cols-%d gap-8 max-w-5xl mx-auto">
%s            </div>
        </div>

%s    </section>

`, len(values), cards.String(), waveDivider("#1f2937"))
}

func servicesSection(services []content.Service) string {
	var cards strings.Builder
	for i, service := range services {
		fmt.Fprintf(&cards, `                <!-- Service %d -->
                <a href="#%s" class="group relative p-8 rounded-lg shadow-lg hover:shadow-2xl transition-all duration-300 cursor-pointer overflow-hidden bg-gradient-to-br %s hover:scale-105 fade-in%s">
                    <div class="absolute inset-0 bg-white opacity-0 group-hover:opacity-10 transition-opacity"></div>
                    <h3 class="text-2xl font-bold text-center text-white relative z-10">%s</h3>
                </a>
`, i+1, service.LinkID, service.Gradient, animationDelayClass(i), service.Name)
	}

	return fmt.Sprintf(`    <!-- Services Section -->
    <section id="services" class="min-h-screen flex items-center py-20 bg-gray-800 relative overflow-hidden">
        <!-- Decorative elements -->
        <div class="absolute top-0 right-0 w-96 h-96 bg-blue-600 rounded-full mix-blend-lighten filter blur-2xl opacity-20 animate-blob"></div>
        <div class="absolute bottom-0 left-0 w-96 h-96 bg-purple-600 rounded-full mix-blend-lighten filter blur-2xl opacity-20 animate-blob animation-delay-2000"></div>

        <div class="container mx-auto px-6 relative z-10">
            <h2 class="text-4xl font-bold text-center mb-12 text-white fade-in">Our Services</h2>
            <div class="grid md:grid-cols-%d gap-8 max-w-5xl mx-auto">
%s            </div>
        </div>

%s    </section>

`, len(services), cards.String(), waveDivider("#000000"))
}

// detailSection renders one full-height service section. The layout
// mirrors on ImagePosition: the background mask fades toward the text side
// and an empty grid cell leaves room for the visible part of the image.
func detailSection(detail content.ServiceDetail) string {
	mask := maskImageRight
	gridLead := "                <!-- Text content on the left -->\n"
	if detail.ImagePosition == "left" {
		mask = maskImageLeft
		gridLead = `                <!-- Empty space for image on the left -->
                <div class="hidden md:block"></div>
                <!-- Text content on the right -->
`
	}

	var bullets strings.Builder
	for _, bullet := range detail.Bullets {
		fmt.Fprintf(&bullets, "                        <li>%s</li>\n", bullet)
	}

	backgroundStyle := "background-image: url('" + detail.BGImage + "'); -webkit-mask-image: " + mask + "; mask-image: " + mask + ";"

	var sb strings.Builder
	fmt.Fprintf(&sb, `    <!-- %s Detail Section -->
    <section id="%s" class="min-h-screen flex items-center py-20 bg-black relative overflow-hidden">
        <!-- Background image -->
        <div class="absolute inset-0 bg-cover bg-center" style="%s"></div>

        <div class="container mx-auto px-6 relative z-10">
            <div class="grid md:grid-cols-2 gap-12 items-center">
%s                <div class="text-white">
                    <h2 class="text-4xl md:text-5xl font-bold mb-8">%s</h2>
%s
                    <h3 class="text-2xl font-bold mb-4">%s</h3>
                    <ul class="list-disc list-inside space-y-2 text-gray-200 mb-6">
%s                    </ul>
%s
                </div>
`,
		detail.Title, detail.ServiceID, backgroundStyle, gridLead, detail.Title,
		TextToParagraphs(detail.Intro, "text-lg text-gray-200 mb-6"),
		detail.BulletsTitle, bullets.String(),
		TextToParagraphs(detail.Closing, "text-lg text-gray-200 mb-6"))

	if detail.ImagePosition == "right" {
		sb.WriteString(`                <!-- Empty space for image on the right -->
                <div class="hidden md:block"></div>
`)
	}

	sb.WriteString(`            </div>
        </div>
    </section>

`)
	return sb.String()
}

func contactSection(contact content.Fields) string {
	return fmt.Sprintf(`    <!-- Contact Section -->
    <section id="contact" class="min-h-screen flex items-center py-20 bg-gray-900">
        <div class="container mx-auto px-6">
            <h2 class="text-4xl font-bold text-center mb-12 text-white">%s</h2>
            <div class="max-w-2xl mx-auto">
                <form class="space-y-6">
                    <div>
                        <label class="block text-gray-300 mb-2 font-semibold">%s</label>
                        <input type="text" class="w-full px-4 py-3 bg-gray-800 border border-gray-700 rounded-lg focus:outline-none focus:border-blue-500 text-white placeholder-gray-500" placeholder="%s">
                    </div>
                    <div>
                        <label class="block text-gray-300 mb-2 font-semibold">%s</label>
                        <input type="email" class="w-full px-4 py-3 bg-gray-800 border border-gray-700 rounded-lg focus:outline-none focus:border-blue-500 text-white placeholder-gray-500" placeholder="%s">
                    </div>
                    <div>
                        <label class="block text-gray-300 mb-2 font-semibold">%s</label>
                        <textarea rows="5" class="w-full px-4 py-3 bg-gray-800 border border-gray-700 rounded-lg focus:outline-none focus:border-blue-500 text-white placeholder-gray-500" placeholder="%s"></textarea>
                    </div>
                    <button type="submit" class="w-full bg-gradient-to-r from-blue-600 to-purple-600 text-white px-8 py-3 rounded-lg font-semibold hover:from-blue-700 hover:to-purple-700 transition">
                        %s
                    </button>
                </form>
            </div>
        </div>
    </section>

`,
		contact.Get("title", "Get In Touch"),
		contact.Get("name_label", "Name"),
		contact.Get("name_placeholder", "Your name"),
		contact.Get("email_label", "Email"),
		contact.Get("email_placeholder", "your@email.com"),
		contact.Get("message_label", "Message"),
		contact.Get("message_placeholder", "Your message"),
		contact.Get("button_text", "Send Message"))
}

func footer(general content.Fields) string {
	return fmt.Sprintf(`    <!-- Footer -->
    <footer class="bg-black text-gray-400 py-8 border-t border-gray-800">
        <div class="container mx-auto px-6 text-center">
            <p>%s</p>
        </div>
    </footer>

`, general.Get("footer_text", "© 2025 TriStar. All rights reserved."))
}

// Mobile menu toggle plus the scroll reveal observer. The observer toggles
// the show state both ways so sections fade again when they leave the
// viewport.
const pageScript = `    <!-- Mobile menu toggle script -->
    <script>
        const mobileMenuButton = document.getElementById('mobile-menu-button');
        const mobileMenu = document.getElementById('mobile-menu');

        mobileMenuButton.addEventListener('click', () => {
            mobileMenu.classList.toggle('hidden');
        });

        // Close mobile menu when clicking a link
        const mobileLinks = mobileMenu.querySelectorAll('a');
        mobileLinks.forEach(link => {
            link.addEventListener('click', () => {
                mobileMenu.classList.add('hidden');
            });
        });

        // Scroll animations with fade in and out
        const observerOptions = {
            threshold: 0.15,
            rootMargin: '0px 0px -50px 0px'
        };

        const observer = new IntersectionObserver((entries) => {
            entries.forEach(entry => {
                if (entry.isIntersecting) {
                    entry.target.classList.add('show');
                } else {
                    entry.target.classList.remove('show');
                }
            });
        }, observerOptions);

        // Observe all fade-in elements
        document.addEventListener('DOMContentLoaded', () => {
            const fadeElements = document.querySelectorAll('.fade-in');
            fadeElements.forEach(el => observer.observe(el));
        });
    </script>
</body>
</html>
`
